package services

import (
	"encoding/json"
	"math"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/utils"
	sharedvalidator "github.com/savannacrm/kenya-ai-crm-be/internal/shared/validator"
)

// ProposalDraftIn is the accepted drafting payload. Any totals the caller
// includes are unknown fields here and therefore dropped before they can
// reach the store.
type ProposalDraftIn struct {
	TenantID string                `json:"tenant_id" validate:"required"`
	LeadID   string                `json:"lead_id" validate:"required"`
	Items    []models.ProposalItem `json:"items" validate:"required,dive"`
}

// Totals is the server-computed breakdown returned to the caller.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type ProposalService struct {
	registry *models.Registry
	docs     repositories.DocumentRepo
	jobs     *AIJobService
	events   *EventService
	validate *sharedvalidator.Validator
	vatRate  float64
}

func NewProposalService(registry *models.Registry, docs repositories.DocumentRepo, jobs *AIJobService, events *EventService, vatRate float64) *ProposalService {
	return &ProposalService{
		registry: registry,
		docs:     docs,
		jobs:     jobs,
		events:   events,
		validate: sharedvalidator.New(),
		vatRate:  vatRate,
	}
}

// ComputeTotals sums quantity × unit price across items, a missing quantity
// counting as 1 and a missing unit price as 0, then applies VAT. Tax and
// total are rounded to 2 decimals.
func ComputeTotals(items []models.ProposalItem, vatRate float64) Totals {
	var subtotal float64
	for _, it := range items {
		qty := 1.0
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		price := 0.0
		if it.UnitPriceKES != nil {
			price = *it.UnitPriceKES
		}
		subtotal += qty * price
	}

	tax := round2(subtotal * vatRate)
	total := round2(subtotal + tax)
	return Totals{Subtotal: subtotal, Tax: tax, Total: total}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateDraft validates the item list, computes totals server-side and
// persists the draft proposal. A proposal_generation AI job is queued
// alongside, best effort.
func (s *ProposalService) CreateDraft(raw []byte) (string, Totals, error) {
	var in ProposalDraftIn
	if err := json.Unmarshal(raw, &in); err != nil {
		return "", Totals{}, &models.ValidationError{
			Kind:   models.KindProposal,
			Errors: []sharedvalidator.FieldError{{Message: "body must be a JSON object"}},
		}
	}
	if errs := s.validate.Validate(in); len(errs) > 0 {
		return "", Totals{}, &models.ValidationError{Kind: models.KindProposal, Errors: errs}
	}

	totals := ComputeTotals(in.Items, s.vatRate)

	proposal := models.NewProposal()
	proposal.TenantID = in.TenantID
	proposal.LeadID = in.LeadID
	proposal.Items = in.Items
	proposal.SubtotalKES = totals.Subtotal
	proposal.TaxKES = totals.Tax
	proposal.TotalKES = totals.Total
	proposal.Status = models.ProposalStatusDraft
	proposal.AIStatus = models.AIStatusPending
	proposal.DeliveryChannels = []string{models.ChannelPDF}

	if verr := s.registry.ValidateRecord(models.KindProposal, proposal); verr != nil {
		return "", Totals{}, verr
	}

	id, err := s.docs.Insert(models.KindProposal, proposal)
	if err != nil {
		return "", Totals{}, err
	}

	if _, err := s.jobs.Queue(in.TenantID, models.AIJobProposalGeneration, map[string]interface{}{"proposal_id": id}); err != nil {
		utils.LogWarn("failed to queue proposal_generation job", map[string]interface{}{
			"proposal_id": id,
			"error":       err.Error(),
		})
	}
	if _, err := s.events.Append(in.TenantID, "proposal.draft_created", nil, map[string]interface{}{"proposal_id": id}); err != nil {
		utils.LogWarn("failed to append proposal.draft_created event", map[string]interface{}{
			"proposal_id": id,
			"error":       err.Error(),
		})
	}

	return id, totals, nil
}
