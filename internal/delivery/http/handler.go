package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brandaudit/backend/internal/domain"
	"github.com/brandaudit/backend/internal/usecase"
)

// Form field names for the three report uploads.
const (
	fieldAdReport        = "ad_report"
	fieldBusinessReport  = "business_report"
	fieldInventoryReport = "inventory_report"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	audit        *usecase.AuditService
	reader       domain.ReportReader
	exporter     domain.AuditExporter
	maxFileBytes int64
}

// NewHandler creates a new HTTP handler
func NewHandler(audit *usecase.AuditService, reader domain.ReportReader, exporter domain.AuditExporter, maxFileMB int64) *Handler {
	if maxFileMB <= 0 {
		maxFileMB = 50
	}
	return &Handler{
		audit:        audit,
		reader:       reader,
		exporter:     exporter,
		maxFileBytes: maxFileMB << 20,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "brandaudit-backend",
		"version": "1.0.0",
	})
}

// RunAudit reconciles the three uploaded reports and returns the unified
// product table, brand summary and portfolio totals as JSON.
func (h *Handler) RunAudit(c *gin.Context) {
	result, ok := h.runFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportAudit reconciles the three uploaded reports and streams the run
// back as a multi-sheet workbook download.
func (h *Handler) ExportAudit(c *gin.Context) {
	result, ok := h.runFromRequest(c)
	if !ok {
		return
	}

	workbook, err := h.exporter.Workbook(result)
	if err != nil {
		log.Printf("[HTTP] workbook export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}

	filename := fmt.Sprintf("brand_audit_%s.xlsx", result.RunID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// runFromRequest reads the three report files and runs the reconciliation.
// On failure it writes the error response itself and returns ok=false; no
// partial result ever leaves this function.
func (h *Handler) runFromRequest(c *gin.Context) (*domain.AuditResult, bool) {
	adTable, err := h.readReport(c, fieldAdReport)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	bizTable, err := h.readReport(c, fieldBusinessReport)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	invTable, err := h.readReport(c, fieldInventoryReport)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}

	opts, err := parseRunOptions(c)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}

	result, err := h.audit.Run(adTable, bizTable, invTable, opts)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	return result, true
}

// readReport pulls one multipart file from the request and decodes it.
func (h *Handler) readReport(c *gin.Context, field string) (*domain.RawTable, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%w: missing file %q", domain.ErrInvalidRequest, field)
	}
	if fileHeader.Size > h.maxFileBytes {
		return nil, fmt.Errorf("%w: file %q exceeds %d bytes", domain.ErrInvalidRequest, field, h.maxFileBytes)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %q: %w", field, err)
	}
	defer f.Close()

	return h.reader.Read(f, fileHeader.Filename)
}

// parseRunOptions reads optional per-request overrides from the form.
func parseRunOptions(c *gin.Context) (usecase.RunOptions, error) {
	var opts usecase.RunOptions

	if raw := c.PostForm("window_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return opts, fmt.Errorf("%w: window_days must be a positive integer, got %q", domain.ErrInvalidRequest, raw)
		}
		opts.WindowDays = days
	}

	if raw := c.PostForm("attribution"); raw != "" {
		policy := domain.AttributionPolicy(raw)
		if !policy.Valid() {
			return opts, fmt.Errorf("%w: attribution must be %q or %q, got %q",
				domain.ErrInvalidRequest, domain.AttributionTotal, domain.AttributionAdvertisedSKU, raw)
		}
		opts.Attribution = policy
	}

	return opts, nil
}

// writeError maps domain failures to HTTP responses. A missing join key
// keeps its full diagnostic text (the searched keywords and the headers
// actually seen) so the operator can spot an upstream format change.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMissingColumn),
		errors.Is(err, domain.ErrEmptyReport),
		errors.Is(err, domain.ErrUnsupportedFormat):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] audit run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
