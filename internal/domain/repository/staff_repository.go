package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
)

// StaffRepository defines the interface for staff data operations
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error)
	ListActive(ctx context.Context) ([]entity.StaffMember, error)
}
