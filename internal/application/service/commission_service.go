package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/sangkips/salon-billing-api/internal/domain/repository"
	infraRepo "github.com/sangkips/salon-billing-api/internal/infrastructure/repository"
	"github.com/sangkips/salon-billing-api/internal/telemetry"
	"github.com/sangkips/salon-billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CommissionService builds commission reports from stored sales, staff and profiles
type CommissionService struct {
	staffRepo   repository.StaffRepository
	profileRepo repository.CommissionProfileRepository
	saleRepo    repository.SaleRepository
	tenantRepo  repository.TenantRepository
	settings    *SettingsService
	location    *time.Location
	metrics     *telemetry.BillingMetrics
	log         *slog.Logger
}

// CommissionServiceDeps groups what the commission service reads from
type CommissionServiceDeps struct {
	StaffRepo   repository.StaffRepository
	ProfileRepo repository.CommissionProfileRepository
	SaleRepo    repository.SaleRepository
	TenantRepo  repository.TenantRepository
	Settings    *SettingsService
	// Location is used for period bucketing when a salon has no time zone of its own
	Location *time.Location
	Metrics  *telemetry.BillingMetrics
	Logger   *slog.Logger
}

// NewCommissionService creates a new commission service
func NewCommissionService(deps CommissionServiceDeps) *CommissionService {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &CommissionService{
		staffRepo:   deps.StaffRepo,
		profileRepo: deps.ProfileRepo,
		saleRepo:    deps.SaleRepo,
		tenantRepo:  deps.TenantRepo,
		settings:    deps.Settings,
		location:    loc,
		metrics:     deps.Metrics,
		log:         log,
	}
}

// CommissionReport is the commission earned by every active staff member over a date range
type CommissionReport struct {
	Start           time.Time                       `json:"start"`
	End             time.Time                       `json:"end"`
	FlatRateApplied bool                            `json:"flat_rate_applied"`
	TotalCommission float64                         `json:"total_commission"`
	TotalRevenue    float64                         `json:"total_revenue"`
	Staff           []billing.StaffCommissionResult `json:"staff"`
}

// StaffPeriodReport breaks one staff member's commission down by settlement period
type StaffPeriodReport struct {
	StaffID   uuid.UUID        `json:"staff_id"`
	StaffName string           `json:"staff_name"`
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	Timezone  string           `json:"timezone"`
	Profiles  []ProfilePeriods `json:"profiles"`
}

// ProfilePeriods is a profile's evaluation per settlement period
type ProfilePeriods struct {
	ProfileID           uuid.UUID                  `json:"profile_id"`
	ProfileName         string                     `json:"profile_name"`
	CalculationInterval enum.CalculationInterval   `json:"calculation_interval"`
	TotalCommission     float64                    `json:"total_commission"`
	Periods             []billing.PeriodCommission `json:"periods"`
}

type reportData struct {
	staff       []entity.StaffMember
	profiles    []entity.CommissionProfile
	assignments []entity.StaffProfileAssignment
	sales       []entity.Sale
	fallback    *billing.CommissionConfig
}

// Report aggregates commission for all active staff over sales dated within [start, end]
func (s *CommissionService) Report(ctx context.Context, start, end time.Time) (report *CommissionReport, err error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("end must not be before start")
	}
	if _, ok := infraRepo.GetTenantID(ctx); !ok {
		return nil, apperror.ErrTenantRequired
	}

	began := time.Now()
	defer func() {
		status, total := "ok", 0.0
		if err != nil {
			status = "error"
		} else {
			total = report.TotalCommission
		}
		s.metrics.ObserveReport(tenantLabel(ctx), status, total, time.Since(began).Seconds())
	}()

	data, err := s.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	profilesByStaff := s.profilesByStaff(ctx, data.profiles, data.assignments)
	staff := make([]billing.StaffMember, len(data.staff))
	for i := range data.staff {
		staff[i] = data.staff[i].ToBilling()
	}
	sales := toBillingSales(data.sales)

	agg := billing.Aggregator{Fallback: data.fallback}
	results := agg.AggregateForRange(sales, start, end, staff, profilesByStaff)

	var commission, revenue decimal.Decimal
	for _, r := range results {
		commission = commission.Add(decimal.NewFromFloat(r.TotalCommission))
		revenue = revenue.Add(decimal.NewFromFloat(r.TotalRevenue))
	}

	s.log.DebugContext(ctx, "Commission report built",
		"staff", len(results), "sales", len(sales), "flat_rate", data.fallback != nil)

	return &CommissionReport{
		Start:           start,
		End:             end,
		FlatRateApplied: data.fallback != nil,
		TotalCommission: commission.Round(2).InexactFloat64(),
		TotalRevenue:    revenue.Round(2).InexactFloat64(),
		Staff:           results,
	}, nil
}

// load reads everything a report needs concurrently
func (s *CommissionService) load(ctx context.Context, start, end time.Time) (*reportData, error) {
	var data reportData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.staff, err = s.staffRepo.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.profiles, err = s.profileRepo.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.assignments, err = s.profileRepo.ListAssignments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.sales, err = s.saleRepo.ListByDateRange(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		data.fallback, err = s.settings.FallbackFor(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// profilesByStaff resolves assignments into evaluator profiles. Stored
// profiles that cannot be evaluated are logged and left out.
func (s *CommissionService) profilesByStaff(ctx context.Context, profiles []entity.CommissionProfile, assignments []entity.StaffProfileAssignment) map[uuid.UUID][]billing.CommissionProfile {
	byID := make(map[uuid.UUID]billing.CommissionProfile, len(profiles))
	for i := range profiles {
		bp, err := profiles[i].ToBilling()
		if err != nil {
			s.log.WarnContext(ctx, "Skipping commission profile", "profile_id", profiles[i].ID, "error", err)
			continue
		}
		byID[bp.ID] = bp
	}

	out := make(map[uuid.UUID][]billing.CommissionProfile)
	for _, a := range assignments {
		if p, ok := byID[a.ProfileID]; ok {
			out[a.StaffID] = append(out[a.StaffID], p)
		}
	}
	return out
}

// StaffPeriods evaluates each of a staff member's active profiles once per
// settlement period, in the salon's time zone
func (s *CommissionService) StaffPeriods(ctx context.Context, staffID uuid.UUID, start, end time.Time) (*StaffPeriodReport, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("end must not be before start")
	}
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	var (
		staff       *entity.StaffMember
		tenant      *entity.Tenant
		assignments []entity.StaffProfileAssignment
		sales       []entity.Sale
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		staff, err = s.staffRepo.GetByID(gctx, staffID)
		return err
	})
	g.Go(func() error {
		var err error
		tenant, err = s.tenantRepo.GetByID(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.profileRepo.ListAssignments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.ListByDateRange(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	var profileIDs []uuid.UUID
	for _, a := range assignments {
		if a.StaffID == staffID {
			profileIDs = append(profileIDs, a.ProfileID)
		}
	}
	profiles, err := s.profileRepo.GetByIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}

	loc := tenant.Location(s.location)
	billingSales := toBillingSales(sales)

	report := &StaffPeriodReport{
		StaffID:   staff.ID,
		StaffName: staff.FullName(),
		Start:     start,
		End:       end,
		Timezone:  loc.String(),
		Profiles:  []ProfilePeriods{},
	}
	for i := range profiles {
		bp, err := profiles[i].ToBilling()
		if err != nil {
			s.log.WarnContext(ctx, "Skipping commission profile", "profile_id", profiles[i].ID, "error", err)
			continue
		}
		if !bp.IsActive {
			continue
		}

		periods := billing.SettleProfilePeriods(staffID, bp, billingSales, start, end, loc)
		total := decimal.Zero
		for _, p := range periods {
			total = total.Add(decimal.NewFromFloat(p.Commission))
		}
		report.Profiles = append(report.Profiles, ProfilePeriods{
			ProfileID:           bp.ID,
			ProfileName:         bp.Name,
			CalculationInterval: bp.CalculationInterval,
			TotalCommission:     total.Round(2).InexactFloat64(),
			Periods:             periods,
		})
	}
	return report, nil
}

func toBillingSales(sales []entity.Sale) []billing.Sale {
	out := make([]billing.Sale, len(sales))
	for i := range sales {
		out[i] = sales[i].ToBilling()
	}
	return out
}
