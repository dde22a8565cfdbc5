package services

import (
	"context"

	"github.com/savannacrm/kenya-ai-crm-be/internal/core/events"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/utils"
)

// EventService appends immutable event log records and mirrors each one
// onto the event bus. Records are never updated or deleted.
type EventService struct {
	registry  *models.Registry
	docs      repositories.DocumentRepo
	publisher events.Publisher
}

func NewEventService(registry *models.Registry, docs repositories.DocumentRepo, publisher events.Publisher) *EventService {
	return &EventService{registry: registry, docs: docs, publisher: publisher}
}

// Append writes one event log record and returns its generated id. The
// broadcast is best effort; a broker failure never fails the append.
func (s *EventService) Append(tenantID, eventType string, actor *string, data map[string]interface{}) (string, error) {
	ev := models.NewEventLog()
	ev.TenantID = tenantID
	ev.Type = eventType
	ev.Actor = actor
	if data != nil {
		ev.Data = data
	}

	if verr := s.registry.ValidateRecord(models.KindEventLog, ev); verr != nil {
		return "", verr
	}

	id, err := s.docs.Insert(models.KindEventLog, ev)
	if err != nil {
		return "", err
	}

	if err := s.publisher.Publish(context.Background(), eventType, ev); err != nil {
		utils.LogWarn("event publish failed", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}

	return id, nil
}
