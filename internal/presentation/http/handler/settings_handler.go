package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salon-billing-api/internal/application/service"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles tax and commission settings requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetTaxSettings returns the salon's tax settings
func (h *SettingsHandler) GetTaxSettings(c *gin.Context) {
	settings, err := h.settingsService.GetTaxSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax settings retrieved successfully", settings)
}

// UpdateTaxSettings replaces the salon's tax settings
func (h *SettingsHandler) UpdateTaxSettings(c *gin.Context) {
	var req request.TaxSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateTaxSettings(c.Request.Context(), req.ToBilling())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax settings updated successfully", settings)
}

// GetCommissionSettings returns the salon's flat-rate commission settings
func (h *SettingsHandler) GetCommissionSettings(c *gin.Context) {
	settings, err := h.settingsService.GetCommissionSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission settings retrieved successfully", settings)
}

// UpdateCommissionSettings replaces the salon's flat-rate commission settings
func (h *SettingsHandler) UpdateCommissionSettings(c *gin.Context) {
	var req request.CommissionConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateCommissionSettings(c.Request.Context(), &service.UpdateCommissionSettingsInput{
		FallbackEnabled: req.FallbackEnabled,
		Config:          req.ToBilling(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission settings updated successfully", settings)
}

// ValidateCommissionConfig checks a flat-rate config without saving it
func (h *SettingsHandler) ValidateCommissionConfig(c *gin.Context) {
	var req request.CommissionConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result := h.settingsService.ValidateCommissionConfig(c.Request.Context(), req.ToBilling())
	response.OK(c, "Commission config checked", result)
}
