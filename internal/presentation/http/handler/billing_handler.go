package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salon-billing-api/internal/application/service"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/dto/response"
)

// BillingHandler handles bill tax calculation requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// CalculateBill returns the GST breakdown of the posted items
func (h *BillingHandler) CalculateBill(c *gin.Context) {
	var req request.CalculateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	summary, err := h.billingService.CalculateBill(c.Request.Context(), req.ToBilling())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill calculated successfully", summary)
}
