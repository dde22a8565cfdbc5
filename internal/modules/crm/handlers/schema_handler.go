package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
)

type SchemaHandler struct {
	registry *models.Registry
}

func NewSchemaHandler(registry *models.Registry) *SchemaHandler {
	return &SchemaHandler{registry: registry}
}

// GetSchema godoc
// @Summary Schema discovery
// @Description Returns the descriptor of every registered entity kind. A kind whose descriptor cannot be generated carries an error marker instead of failing the map.
// @Tags Schema
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /schema [get]
func (h *SchemaHandler) GetSchema(c *fiber.Ctx) error {
	return c.JSON(h.registry.Describe())
}
