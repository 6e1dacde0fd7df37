package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/repository"
	"github.com/sangkips/salon-billing-api/pkg/apperror"
)

// StaffService handles staff listing and profile assignment
type StaffService struct {
	staffRepo   repository.StaffRepository
	profileRepo repository.CommissionProfileRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository, profileRepo repository.CommissionProfileRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo, profileRepo: profileRepo}
}

// ListStaff returns the active staff with the IDs of their assigned profiles
func (s *StaffService) ListStaff(ctx context.Context) ([]entity.StaffMember, error) {
	staff, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.profileRepo.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}

	byStaff := make(map[uuid.UUID][]uuid.UUID)
	for _, a := range assignments {
		byStaff[a.StaffID] = append(byStaff[a.StaffID], a.ProfileID)
	}
	for i := range staff {
		staff[i].ProfileIDs = byStaff[staff[i].ID]
	}
	return staff, nil
}

// AssignProfiles replaces the profiles a staff member earns under.
// An empty list removes every assignment.
func (s *StaffService) AssignProfiles(ctx context.Context, staffID uuid.UUID, profileIDs []uuid.UUID) (*entity.StaffMember, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	ids := unique(profileIDs)
	if len(ids) > 0 {
		profiles, err := s.profileRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(profiles) != len(ids) {
			return nil, apperror.NewNotFoundError("Commission profile")
		}
	}

	if err := s.profileRepo.AssignToStaff(ctx, staffID, ids); err != nil {
		return nil, err
	}
	staff.ProfileIDs = ids
	return staff, nil
}

func unique(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
