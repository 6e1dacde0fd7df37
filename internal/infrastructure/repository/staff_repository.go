package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salon-billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) domainRepo.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	var staff entity.StaffMember
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) ListActive(ctx context.Context) ([]entity.StaffMember, error) {
	var staff []entity.StaffMember
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("is_active = ?", true).
		Order("first_name ASC, last_name ASC").
		Find(&staff).Error
	return staff, err
}
