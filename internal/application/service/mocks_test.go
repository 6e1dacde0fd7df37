package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/repository"
	infraRepo "github.com/sangkips/salon-billing-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/mock"
)

var testTenantID = uuid.MustParse("8f14e45f-ceea-4e7a-9b1f-2d3c4a5b6c7d")

func tenantCtx() context.Context {
	return infraRepo.WithTenant(context.Background(), testTenantID)
}

type mockSettingsRepo struct{ mock.Mock }

func (m *mockSettingsRepo) GetTaxSettings(ctx context.Context) (*entity.TaxSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*entity.TaxSettings)
	return s, args.Error(1)
}

func (m *mockSettingsRepo) SaveTaxSettings(ctx context.Context, s *entity.TaxSettings) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSettingsRepo) GetCommissionSettings(ctx context.Context) (*entity.CommissionSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*entity.CommissionSettings)
	return s, args.Error(1)
}

func (m *mockSettingsRepo) SaveCommissionSettings(ctx context.Context, s *entity.CommissionSettings) error {
	return m.Called(ctx, s).Error(0)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) Create(ctx context.Context, p *entity.CommissionProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CommissionProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.CommissionProfile)
	return p, args.Error(1)
}

func (m *mockProfileRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.CommissionProfile, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]entity.CommissionProfile)
	return p, args.Error(1)
}

func (m *mockProfileRepo) Update(ctx context.Context, p *entity.CommissionProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProfileRepo) List(ctx context.Context, params *repository.ProfileFilterParams) ([]entity.CommissionProfile, int64, error) {
	args := m.Called(ctx, params)
	p, _ := args.Get(0).([]entity.CommissionProfile)
	return p, args.Get(1).(int64), args.Error(2)
}

func (m *mockProfileRepo) ListActive(ctx context.Context) ([]entity.CommissionProfile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]entity.CommissionProfile)
	return p, args.Error(1)
}

func (m *mockProfileRepo) ListAssignments(ctx context.Context) ([]entity.StaffProfileAssignment, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).([]entity.StaffProfileAssignment)
	return a, args.Error(1)
}

func (m *mockProfileRepo) AssignToStaff(ctx context.Context, staffID uuid.UUID, profileIDs []uuid.UUID) error {
	return m.Called(ctx, staffID, profileIDs).Error(0)
}

type mockStaffRepo struct{ mock.Mock }

func (m *mockStaffRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.StaffMember)
	return s, args.Error(1)
}

func (m *mockStaffRepo) ListActive(ctx context.Context) ([]entity.StaffMember, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]entity.StaffMember)
	return s, args.Error(1)
}

type mockSaleRepo struct{ mock.Mock }

func (m *mockSaleRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	args := m.Called(ctx, start, end)
	s, _ := args.Get(0).([]entity.Sale)
	return s, args.Error(1)
}

type mockTenantRepo struct{ mock.Mock }

func (m *mockTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.Tenant)
	return t, args.Error(1)
}
