package handler

import (
	"time"

	reportapp "github.com/finopenpos/backend/internal/application/report"
	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/gin-gonic/gin"
)

const reportDateFormat = "2006-01-02"

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales-by-day", h.SalesByDay)
		reports.GET("/movements", h.Movements)
		reports.GET("/orders-by-day", h.OrdersByDay)
	}
}

// parseDateRange reads the from and to query parameters. Both are
// required and interpreted as UTC calendar dates.
func (h *ReportHandler) parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.ParseInLocation(reportDateFormat, c.Query("from"), time.UTC)
	if err != nil {
		h.BadRequest(c, "Invalid or missing 'from' date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	to, err := time.ParseInLocation(reportDateFormat, c.Query("to"), time.UTC)
	if err != nil {
		h.BadRequest(c, "Invalid or missing 'to' date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		h.BadRequest(c, "'to' date must not be before 'from' date")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// SalesByDay handles GET /reports/sales-by-day?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) SalesByDay(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	from, to, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	days, err := h.reportService.SalesByDay(c.Request.Context(), ownerID, from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, days)
}

// Movements handles GET /reports/movements?from=...&to=...&type=...&category=...
func (h *ReportHandler) Movements(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	from, to, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	filter := finance.TransactionFilter{
		Type:     finance.TransactionType(c.Query("type")),
		Category: c.Query("category"),
	}

	report, err := h.reportService.Movements(c.Request.Context(), ownerID, from, to, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// OrdersByDay handles GET /reports/orders-by-day?date=YYYY-MM-DD
func (h *ReportHandler) OrdersByDay(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	date, err := time.ParseInLocation(reportDateFormat, c.Query("date"), time.UTC)
	if err != nil {
		h.BadRequest(c, "Invalid or missing 'date', expected YYYY-MM-DD")
		return
	}

	orders, err := h.reportService.OrdersByDay(c.Request.Context(), ownerID, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}
