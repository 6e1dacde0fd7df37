package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salon-billing-api/internal/application/service"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/sangkips/salon-billing-api/internal/domain/repository"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salon-billing-api/pkg/pagination"
)

// CommissionProfileHandler handles commission profile requests
type CommissionProfileHandler struct {
	profileService *service.CommissionProfileService
}

// NewCommissionProfileHandler creates a new commission profile handler
func NewCommissionProfileHandler(profileService *service.CommissionProfileService) *CommissionProfileHandler {
	return &CommissionProfileHandler{profileService: profileService}
}

// List returns a page of profiles. Supports search, type and active filters.
func (h *CommissionProfileHandler) List(c *gin.Context) {
	var pag pagination.PaginationParams
	if err := c.ShouldBindQuery(&pag); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	params := &repository.ProfileFilterParams{
		Pagination: &pag,
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	}
	if v := c.Query("type"); v != "" {
		var t enum.ProfileType
		if err := t.UnmarshalJSON([]byte(`"` + v + `"`)); err != nil || !t.Valid() {
			response.BadRequest(c, "Invalid profile type")
			return
		}
		params.Type = &t
	}

	result, err := h.profileService.ListProfiles(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Commission profiles retrieved successfully", result)
}

// Get returns a single profile
func (h *CommissionProfileHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission profile retrieved successfully", profile)
}

// Create stores a new profile
func (h *CommissionProfileHandler) Create(c *gin.Context) {
	var req request.CommissionProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), toProfileInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Commission profile created successfully", profile)
}

// Update replaces a profile's configuration
func (h *CommissionProfileHandler) Update(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.CommissionProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), id, toProfileInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Commission profile updated successfully", profile)
}

// toProfileInput maps the request. Profiles are active unless is_active is false.
func toProfileInput(req *request.CommissionProfileRequest) *service.ProfileInput {
	active := req.IsActive == nil || *req.IsActive
	return &service.ProfileInput{
		Name:                req.Name,
		Type:                req.Type,
		CalculationInterval: req.CalculationInterval,
		QualifyingItems:     req.QualifyingItems,
		IncludeTax:          req.IncludeTax,
		IsActive:            active,
		CascadingCommission: req.CascadingCommission,
		TargetTiers:         req.TargetTiers,
		ItemRates:           req.ItemRates,
	}
}
