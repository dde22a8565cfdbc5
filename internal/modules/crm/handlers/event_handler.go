package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/services"
)

type EventHandler struct {
	docs *services.DocumentService
}

func NewEventHandler(docs *services.DocumentService) *EventHandler {
	return &EventHandler{docs: docs}
}

// ListEvents godoc
// @Summary List event log records for a tenant
// @Description Returns up to 50 event log documents filtered by tenant_id
// @Tags Events
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {array} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	docs, err := h.docs.ListByTenant(models.KindEventLog, c.Query("tenant_id"), 0)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(docs)
}
