package main

import (
	"fmt"
	"log"
	"os"

	"github.com/brandaudit/backend/config"
	httpDelivery "github.com/brandaudit/backend/internal/delivery/http"
	"github.com/brandaudit/backend/internal/domain"
	"github.com/brandaudit/backend/internal/infrastructure/export"
	"github.com/brandaudit/backend/internal/infrastructure/report"
	"github.com/brandaudit/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting BrandAudit Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Audit window: %d days, attribution: %s", cfg.Audit.WindowDays, cfg.Audit.Attribution)

	// Initialize usecase layer
	auditService := usecase.NewAuditService(usecase.AuditConfig{
		WindowDays:     cfg.Audit.WindowDays,
		Attribution:    domain.AttributionPolicy(cfg.Audit.Attribution),
		BrandRules:     cfg.Audit.BrandRules,
		CurrencyTokens: cfg.Audit.CurrencyTokens,
	})
	log.Printf("Brand portfolio: %v", auditService.Brands())

	// Initialize infrastructure dependencies
	reader := report.NewReader()
	exporter := export.NewExcelExporter(auditService.Brands())

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(auditService, reader, exporter, cfg.Upload.MaxFileMB)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
