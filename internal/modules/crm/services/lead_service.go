package services

import (
	"encoding/json"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/utils"
	sharedvalidator "github.com/savannacrm/kenya-ai-crm-be/internal/shared/validator"
)

// LeadIn is the accepted lead intake payload. Unknown fields in the request
// body are ignored; status and meta are always set server-side.
type LeadIn struct {
	TenantID string  `json:"tenant_id" validate:"required"`
	Source   string  `json:"source" validate:"required,oneof=whatsapp gmail web social manual"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Company  *string `json:"company"`
}

type LeadService struct {
	registry *models.Registry
	docs     repositories.DocumentRepo
	jobs     *AIJobService
	events   *EventService
	validate *sharedvalidator.Validator
}

func NewLeadService(registry *models.Registry, docs repositories.DocumentRepo, jobs *AIJobService, events *EventService) *LeadService {
	return &LeadService{
		registry: registry,
		docs:     docs,
		jobs:     jobs,
		events:   events,
		validate: sharedvalidator.New(),
	}
}

// CreateLead validates the intake payload and persists a new lead. The
// stored record always has status "new" and meta.ingest "api", whatever the
// caller sent. A lead_analysis AI job is queued alongside, best effort.
func (s *LeadService) CreateLead(raw []byte) (string, error) {
	var in LeadIn
	if err := json.Unmarshal(raw, &in); err != nil {
		return "", &models.ValidationError{
			Kind:   models.KindLead,
			Errors: []sharedvalidator.FieldError{{Message: "body must be a JSON object"}},
		}
	}
	if errs := s.validate.Validate(in); len(errs) > 0 {
		return "", &models.ValidationError{Kind: models.KindLead, Errors: errs}
	}

	lead := models.NewLead()
	lead.TenantID = in.TenantID
	lead.Source = in.Source
	lead.Name = in.Name
	lead.Phone = in.Phone
	lead.Email = in.Email
	lead.Company = in.Company

	// Server overrides, unconditionally
	lead.Status = models.LeadStatusNew
	lead.Meta = map[string]interface{}{"ingest": "api"}

	if verr := s.registry.ValidateRecord(models.KindLead, lead); verr != nil {
		return "", verr
	}

	id, err := s.docs.Insert(models.KindLead, lead)
	if err != nil {
		return "", err
	}

	if _, err := s.jobs.Queue(in.TenantID, models.AIJobLeadAnalysis, map[string]interface{}{"lead_id": id}); err != nil {
		utils.LogWarn("failed to queue lead_analysis job", map[string]interface{}{
			"lead_id": id,
			"error":   err.Error(),
		})
	}
	if _, err := s.events.Append(in.TenantID, "lead.created", nil, map[string]interface{}{"lead_id": id}); err != nil {
		utils.LogWarn("failed to append lead.created event", map[string]interface{}{
			"lead_id": id,
			"error":   err.Error(),
		})
	}

	return id, nil
}
