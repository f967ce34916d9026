package master

import (
	"context"
	"fmt"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/holiday"
	"github.com/choongman-erp/erp-backend-go/internal/domain/schedule"
	"github.com/choongman-erp/erp-backend-go/internal/domain/store"
	"github.com/choongman-erp/erp-backend-go/internal/domain/user"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/utils"
)

// MasterService serves the reference data the attendance and payroll flows
// depend on: the store directory, published shift plans and the holiday
// calendar.
type MasterService interface {
	ListStores(ctx context.Context) ([]store.StoreResponse, error)
	GetStore(ctx context.Context, id string) (store.StoreResponse, error)

	ListShifts(ctx context.Context, filter schedule.ShiftListFilter) ([]schedule.ShiftResponse, error)
	UpsertShift(ctx context.Context, req schedule.UpsertShiftRequest) (schedule.ShiftResponse, error)

	ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error)
	UpsertHoliday(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type MasterServiceImpl struct {
	storeRepo   store.StoreRepository
	shiftRepo   schedule.ShiftRepository
	holidayRepo holiday.HolidayRepository
}

func NewMasterService(
	storeRepo store.StoreRepository,
	shiftRepo schedule.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
) MasterService {
	return &MasterServiceImpl{
		storeRepo:   storeRepo,
		shiftRepo:   shiftRepo,
		holidayRepo: holidayRepo,
	}
}

// ListStores implements MasterService. The head-office aggregate store is
// visible only to head-office callers.
func (s *MasterServiceImpl) ListStores(ctx context.Context) ([]store.StoreResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.List(ctx, identity.Role == user.RoleHeadOffice)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	results := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		results = append(results, mapToStoreResponse(st))
	}
	return results, nil
}

// GetStore implements MasterService.
func (s *MasterServiceImpl) GetStore(ctx context.Context, id string) (store.StoreResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	st, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return store.StoreResponse{}, err
	}
	if st.IsHeadOffice && identity.Role != user.RoleHeadOffice {
		return store.StoreResponse{}, store.ErrStoreNotFound
	}
	return mapToStoreResponse(st), nil
}

// ListShifts implements MasterService.
func (s *MasterServiceImpl) ListShifts(ctx context.Context, filter schedule.ShiftListFilter) ([]schedule.ShiftResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role != user.RoleHeadOffice {
		if filter.StoreID != nil && *filter.StoreID != identity.StoreID {
			return nil, user.ErrStoreScopeDenied
		}
		storeID := identity.StoreID
		filter.StoreID = &storeID
	}

	shifts, err := s.shiftRepo.ListRange(ctx, filter.From, filter.To, filter.StoreID, filter.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	results := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		results = append(results, mapToShiftResponse(shift))
	}
	return results, nil
}

// UpsertShift implements MasterService. Managers may only plan shifts for
// their own store.
func (s *MasterServiceImpl) UpsertShift(ctx context.Context, req schedule.UpsertShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	if !user.CanAccessStore(identity.Role, identity.StoreID, req.StoreID) {
		return schedule.ShiftResponse{}, user.ErrStoreScopeDenied
	}

	shift, err := s.shiftRepo.Upsert(ctx, schedule.Shift{
		StoreID:    req.StoreID,
		EmployeeID: req.EmployeeID,
		WorkDate:   req.WorkDate,
		ClockIn:    req.ClockIn,
		ClockOut:   req.ClockOut,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	})
	if err != nil {
		return schedule.ShiftResponse{}, fmt.Errorf("failed to upsert shift: %w", err)
	}
	return mapToShiftResponse(shift), nil
}

// ListHolidays implements MasterService. It returns the effective calendar:
// the configured entries for the year, or the built-in fixed calendar when
// none are configured.
func (s *MasterServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	if len(holidays) == 0 {
		holidays = holiday.BuiltinCalendar(year)
	}

	results := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		results = append(results, holiday.HolidayResponse{
			ID:   h.ID,
			Year: h.Year,
			Date: h.Date,
			Name: h.Name,
		})
	}
	return results, nil
}

// UpsertHoliday implements MasterService.
func (s *MasterServiceImpl) UpsertHoliday(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse(utils.DateLayout, req.Date)
	h, err := s.holidayRepo.Upsert(ctx, holiday.Holiday{
		Year: date.Year(),
		Date: req.Date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return holiday.HolidayResponse{
		ID:   h.ID,
		Year: h.Year,
		Date: h.Date,
		Name: h.Name,
	}, nil
}

// DeleteHoliday implements MasterService.
func (s *MasterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func mapToStoreResponse(st store.Store) store.StoreResponse {
	radius := st.RadiusMeters
	if radius <= 0 {
		radius = store.DefaultRadiusMeters
	}
	return store.StoreResponse{
		ID:           st.ID,
		Name:         st.Name,
		Timezone:     st.Timezone,
		Latitude:     st.Latitude,
		Longitude:    st.Longitude,
		RadiusMeters: radius,
		IsHeadOffice: st.IsHeadOffice,
	}
}

func mapToShiftResponse(shift schedule.Shift) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		ID:             shift.ID,
		StoreID:        shift.StoreID,
		EmployeeID:     shift.EmployeeID,
		WorkDate:       shift.WorkDate,
		ClockIn:        shift.ClockIn,
		ClockOut:       shift.ClockOut,
		BreakStart:     shift.BreakStart,
		BreakEnd:       shift.BreakEnd,
		PlannedMinutes: shift.PlannedMinutes(),
	}
}
