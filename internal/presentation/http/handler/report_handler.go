package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salon-billing-api/internal/application/service"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/dto/response"
)

// ReportHandler handles commission report requests
type ReportHandler struct {
	commissionService *service.CommissionService
	location          *time.Location
	now               func() time.Time
}

// NewReportHandler creates a new report handler. loc is used to read dates
// for salons without a time zone of their own.
func NewReportHandler(commissionService *service.CommissionService, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{commissionService: commissionService, location: loc, now: time.Now}
}

// Commissions aggregates commission for every active staff member over ?start&end
func (h *ReportHandler) Commissions(c *gin.Context) {
	start, end, err := dateRange(c, tenantLocation(c, h.location), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.commissionService.Report(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission report generated successfully", report)
}

// StaffPeriods breaks one staff member's commission down by settlement period
func (h *ReportHandler) StaffPeriods(c *gin.Context) {
	staffID, err := uuidParam(c, "staff_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	start, end, err := dateRange(c, tenantLocation(c, h.location), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.commissionService.StaffPeriods(c.Request.Context(), staffID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission periods generated successfully", report)
}
