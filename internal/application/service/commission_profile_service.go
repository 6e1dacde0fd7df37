package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/sangkips/salon-billing-api/internal/domain/repository"
	infraRepo "github.com/sangkips/salon-billing-api/internal/infrastructure/repository"
	"github.com/sangkips/salon-billing-api/internal/telemetry"
	"github.com/sangkips/salon-billing-api/pkg/apperror"
	"github.com/sangkips/salon-billing-api/pkg/pagination"
)

// CommissionProfileService handles commission profile operations
type CommissionProfileService struct {
	profileRepo repository.CommissionProfileRepository
	metrics     *telemetry.BillingMetrics
}

// NewCommissionProfileService creates a new commission profile service
func NewCommissionProfileService(profileRepo repository.CommissionProfileRepository, metrics *telemetry.BillingMetrics) *CommissionProfileService {
	return &CommissionProfileService{profileRepo: profileRepo, metrics: metrics}
}

// ProfileInput represents the create and update profile input
type ProfileInput struct {
	Name                string
	Type                enum.ProfileType
	CalculationInterval enum.CalculationInterval
	QualifyingItems     []enum.ItemKind
	IncludeTax          bool
	IsActive            bool
	CascadingCommission bool
	TargetTiers         []billing.TargetTier
	ItemRates           []billing.ItemRate
}

func (in *ProfileInput) applyTo(p *entity.CommissionProfile) {
	p.Name = in.Name
	p.Type = in.Type
	p.CalculationInterval = in.CalculationInterval
	p.QualifyingItems = in.QualifyingItems
	p.IncludeTax = in.IncludeTax
	p.IsActive = in.IsActive
	p.CascadingCommission = in.CascadingCommission
	p.TargetTiers = in.TargetTiers
	p.ItemRates = in.ItemRates
}

// CreateProfile validates and stores a new profile
func (s *CommissionProfileService) CreateProfile(ctx context.Context, input *ProfileInput) (*entity.CommissionProfile, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	profile := &entity.CommissionProfile{TenantID: tenantID}
	input.applyTo(profile)

	if err := s.check(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile retrieves a profile by ID
func (s *CommissionProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.CommissionProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Commission profile")
	}
	return profile, nil
}

// UpdateProfile replaces the configuration of an existing profile
func (s *CommissionProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, input *ProfileInput) (*entity.CommissionProfile, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	input.applyTo(profile)

	if err := s.check(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListProfiles lists profiles page by page
func (s *CommissionProfileService) ListProfiles(ctx context.Context, params *repository.ProfileFilterParams) (*pagination.PaginatedResult[entity.CommissionProfile], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	profiles, total, err := s.profileRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(profiles, pag), nil
}

// check rejects profiles the evaluator could not use
func (s *CommissionProfileService) check(ctx context.Context, profile *entity.CommissionProfile) error {
	var messages []string

	bp, err := profile.ToBilling()
	if err != nil && profile.Type.Valid() {
		messages = []string{"a " + profile.Type.String() + " profile cannot carry rules of the other type"}
	} else {
		result := billing.ValidateProfile(bp)
		messages = result.Errors
	}

	if len(messages) == 0 {
		return nil
	}
	s.metrics.ValidationFailed(tenantLabel(ctx), "profile")
	return apperror.NewValidationMessages("profile", messages)
}
