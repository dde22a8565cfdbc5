package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/services"
)

type ProposalHandler struct {
	proposals *services.ProposalService
	docs      *services.DocumentService
}

func NewProposalHandler(proposals *services.ProposalService, docs *services.DocumentService) *ProposalHandler {
	return &ProposalHandler{proposals: proposals, docs: docs}
}

// CreateDraft godoc
// @Summary Draft a proposal
// @Description Validates the item list and stores a draft proposal. Subtotal, VAT and total are computed server-side; totals supplied by the caller are ignored.
// @Tags Proposals
// @Accept json
// @Produce json
// @Param payload body services.ProposalDraftIn true "Proposal draft payload"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /proposals/draft [post]
func (h *ProposalHandler) CreateDraft(c *fiber.Ctx) error {
	id, totals, err := h.proposals.CreateDraft(c.Body())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"id":     id,
		"status": "draft_created",
		"totals": totals,
	})
}

// ListProposals godoc
// @Summary List proposals for a tenant
// @Description Returns up to 50 proposal documents filtered by tenant_id
// @Tags Proposals
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {array} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /proposals [get]
func (h *ProposalHandler) ListProposals(c *fiber.Ctx) error {
	docs, err := h.docs.ListByTenant(models.KindProposal, c.Query("tenant_id"), 0)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(docs)
}
