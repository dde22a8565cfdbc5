package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/services"
)

type LeadHandler struct {
	leads *services.LeadService
	docs  *services.DocumentService
}

func NewLeadHandler(leads *services.LeadService, docs *services.DocumentService) *LeadHandler {
	return &LeadHandler{leads: leads, docs: docs}
}

// CreateLead godoc
// @Summary Create a lead
// @Description Validates the intake payload and stores a new lead. Status and ingestion metadata are set server-side.
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body services.LeadIn true "Lead intake payload"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	id, err := h.leads.CreateLead(c.Body())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"id": id, "status": "created"})
}

// ListLeads godoc
// @Summary List leads for a tenant
// @Description Returns up to 50 lead documents filtered by tenant_id
// @Tags Leads
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {array} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	docs, err := h.docs.ListByTenant(models.KindLead, c.Query("tenant_id"), 0)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(docs)
}

// errorResponse maps domain errors onto HTTP statuses: validation failures
// become client errors, anything from the store a service error.
func errorResponse(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": verr.Errors})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
