package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/savannacrm/kenya-ai-crm-be/internal/core/events"
	"github.com/savannacrm/kenya-ai-crm-be/internal/core/usage"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/handlers"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/services"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/config"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/database"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/metrics"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/utils"

	_ "github.com/savannacrm/kenya-ai-crm-be/cmd/api/docs"
)

// @title Kenya AI-CRM Backend API
// @version 1.0
// @description Multi-tenant CRM backend: leads, proposals, billing and AI job metadata over a document store
// @license.name MIT
// @host localhost:8000
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting api on port %s", cfg.Port)

	// Init document store. A missing or unreachable database degrades the
	// service instead of preventing boot.
	db := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	defer db.Close()

	// Schema registry, built once, immutable afterwards
	registry := models.NewRegistry()

	// Repositories
	docRepo := repositories.NewDocumentRepo(db)

	// Event publisher with broker fallback
	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		p, err := events.New(cfg.AMQPURL, cfg.EventsExchange)
		if err != nil {
			utils.LogWarn("event broker unreachable, events will not be broadcast", map[string]interface{}{
				"error": err.Error(),
			})
			publisher = events.NewFallback()
		} else {
			publisher = p
		}
	} else {
		publisher = events.NewFallback()
	}
	defer publisher.Close()

	// Services
	eventService := services.NewEventService(registry, docRepo, publisher)
	jobService := services.NewAIJobService(registry, docRepo)
	leadService := services.NewLeadService(registry, docRepo, jobService, eventService)
	proposalService := services.NewProposalService(registry, docRepo, jobService, eventService, cfg.VATRate)
	documentService := services.NewDocumentService(registry, docRepo)

	log.Printf("💰 VAT rate: %.2f", cfg.VATRate)

	// Usage snapshots
	snapshotter := usage.NewSnapshotter(docRepo, eventService, registry.Kinds())
	if err := snapshotter.Start(cfg.UsageSnapshotCron); err != nil {
		log.Fatalf("Failed to start usage snapshotter: %v", err)
	}
	defer snapshotter.Stop()

	// Handlers
	healthHandler := handlers.NewHealthHandler(docRepo, cfg)
	schemaHandler := handlers.NewSchemaHandler(registry)
	leadHandler := handlers.NewLeadHandler(leadService, documentService)
	proposalHandler := handlers.NewProposalHandler(proposalService, documentService)
	eventHandler := handlers.NewEventHandler(documentService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Kenya AI-CRM Backend",
	})

	// Middleware
	app.Use(cors.New())
	httpMetrics := metrics.NewHTTPMetrics("crm-api")
	app.Use(httpMetrics.Middleware())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health and diagnostics
	app.Get("/", healthHandler.GetRoot)
	app.Get("/test", healthHandler.TestDatabase)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Schema discovery
	app.Get("/schema", schemaHandler.GetSchema)

	// Lead routes
	app.Post("/leads", leadHandler.CreateLead)
	app.Get("/leads", leadHandler.ListLeads)

	// Proposal routes
	app.Post("/proposals/draft", proposalHandler.CreateDraft)
	app.Get("/proposals", proposalHandler.ListProposals)

	// Event log routes
	app.Get("/events", eventHandler.ListEvents)

	log.Printf("✅ api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
