package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/sangkips/salon-billing-api/pkg/pagination"
)

// CommissionProfileRepository defines the interface for commission profile data operations
type CommissionProfileRepository interface {
	Create(ctx context.Context, profile *entity.CommissionProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CommissionProfile, error)
	// GetByIDs retrieves multiple profiles in a single query
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.CommissionProfile, error)
	Update(ctx context.Context, profile *entity.CommissionProfile) error
	List(ctx context.Context, params *ProfileFilterParams) ([]entity.CommissionProfile, int64, error)
	ListActive(ctx context.Context) ([]entity.CommissionProfile, error)

	// ListAssignments returns every staff/profile link of the tenant
	ListAssignments(ctx context.Context) ([]entity.StaffProfileAssignment, error)
	// AssignToStaff replaces the profiles assigned to a staff member
	AssignToStaff(ctx context.Context, staffID uuid.UUID, profileIDs []uuid.UUID) error
}

// ProfileFilterParams contains filtering parameters for profile queries
type ProfileFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.ProfileType
	ActiveOnly bool
}
