package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salon-billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type commissionProfileRepository struct {
	db *gorm.DB
}

// NewCommissionProfileRepository creates a new commission profile repository
func NewCommissionProfileRepository(db *gorm.DB) domainRepo.CommissionProfileRepository {
	return &commissionProfileRepository{db: db}
}

func (r *commissionProfileRepository) Create(ctx context.Context, profile *entity.CommissionProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *commissionProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CommissionProfile, error) {
	var profile entity.CommissionProfile
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByIDs retrieves multiple profiles by their IDs in a single query
func (r *commissionProfileRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.CommissionProfile, error) {
	if len(ids) == 0 {
		return []entity.CommissionProfile{}, nil
	}
	var profiles []entity.CommissionProfile
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("id IN ?", ids).
		Find(&profiles).Error
	return profiles, err
}

func (r *commissionProfileRepository) Update(ctx context.Context, profile *entity.CommissionProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *commissionProfileRepository) List(ctx context.Context, params *domainRepo.ProfileFilterParams) ([]entity.CommissionProfile, int64, error) {
	var profiles []entity.CommissionProfile
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CommissionProfile{}).Scopes(TenantScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&profiles).Error

	return profiles, total, err
}

func (r *commissionProfileRepository) ListActive(ctx context.Context) ([]entity.CommissionProfile, error) {
	var profiles []entity.CommissionProfile
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *commissionProfileRepository) ListAssignments(ctx context.Context) ([]entity.StaffProfileAssignment, error) {
	var assignments []entity.StaffProfileAssignment
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// AssignToStaff replaces the staff member's assignments in a single transaction
func (r *commissionProfileRepository) AssignToStaff(ctx context.Context, staffID uuid.UUID, profileIDs []uuid.UUID) error {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return errors.New("assign profiles: tenant missing from context")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(TenantScope(ctx)).
			Where("staff_id = ?", staffID).
			Delete(&entity.StaffProfileAssignment{}).Error; err != nil {
			return err
		}
		if len(profileIDs) == 0 {
			return nil
		}

		assignments := make([]entity.StaffProfileAssignment, len(profileIDs))
		for i, id := range profileIDs {
			assignments[i] = entity.StaffProfileAssignment{TenantID: tenantID, StaffID: staffID, ProfileID: id}
		}
		return tx.Create(&assignments).Error
	})
}
