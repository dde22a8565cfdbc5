package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/config"
)

type HealthHandler struct {
	docs repositories.DocumentRepo
	cfg  *config.Config
}

func NewHealthHandler(docs repositories.DocumentRepo, cfg *config.Config) *HealthHandler {
	return &HealthHandler{docs: docs, cfg: cfg}
}

// GetRoot godoc
// @Summary Liveness check
// @Description Confirms the backend process is running
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) GetRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Kenya AI-CRM Backend running"})
}

// TestDatabase godoc
// @Summary Database diagnostic
// @Description Reports backend, database and env configuration status. Every sub-check degrades to a textual status; the endpoint itself never fails.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *HealthHandler) TestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      setFlag(h.cfg.DatabaseURL != ""),
		"database_name":     setFlag(h.cfg.DatabaseName != ""),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if !h.docs.Available() {
		response["database"] = "❌ Not Initialized"
		return c.JSON(response)
	}

	response["database"] = "✅ Available"

	collections, err := h.docs.Collections(20)
	if err != nil {
		response["database"] = "⚠️ Connected but error: " + truncate(err.Error(), 80)
		return c.JSON(response)
	}

	response["collections"] = collections
	response["database"] = "✅ Connected & Working"
	response["connection_status"] = "Connected"
	return c.JSON(response)
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate cuts on a rune boundary so multibyte store messages stay
// valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
