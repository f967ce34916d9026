package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/domain/employee"
	"github.com/choongman-erp/erp-backend-go/internal/domain/holiday"
	"github.com/choongman-erp/erp-backend-go/internal/domain/payroll"
	"github.com/choongman-erp/erp-backend-go/internal/domain/schedule"
	"github.com/choongman-erp/erp-backend-go/internal/domain/user"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/utils"
	"github.com/choongman-erp/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/choongman-erp/erp-backend-go/internal/service/attendance"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	eventRepo    attendance.EventRepository
	shiftRepo    schedule.ShiftRepository
	holidayRepo  holiday.HolidayRepository
	calculator   Calculator
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	eventRepo attendance.EventRepository,
	shiftRepo schedule.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
	policy payroll.Policy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		calculator:   NewCalculator(policy),
	}
}

// Preview implements payroll.PayrollService. It is read-only: the preview is
// recomputed fresh from source data on every call and persisted only through
// an explicit Save.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.PreviewRequest) ([]payroll.LineResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	storeID, err := s.scopeStore(identity, req.StoreID)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd, err := utils.MonthBounds(req.Month, time.UTC)
	if err != nil {
		return nil, payroll.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	from := monthStart.Format(utils.DateLayout)
	to := monthEnd.AddDate(0, 0, -1).Format(utils.DateLayout)

	events, err := s.eventRepo.ListRange(ctx, attendance.ListFilter{From: from, To: to, StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	shifts, err := s.shiftRepo.ListRange(ctx, from, to, storeID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	holidaySet, err := s.holidaySet(ctx, monthStart.Year())
	if err != nil {
		return nil, err
	}

	summaries := attendanceService.BuildDailySummaries(events, shifts, holidaySet)
	totalsByEmployee := foldTotals(summaries)

	lines := make([]payroll.LineResponse, 0, len(employees))
	for _, emp := range employees {
		if !emp.ActiveIn(monthStart, monthEnd) {
			continue
		}
		line := s.calculator.ComputeLine(emp, monthStart, totalsByEmployee[emp.ID])
		lines = append(lines, mapToLineResponse(line))
	}

	return lines, nil
}

// Save implements payroll.PayrollService. Each line's net pay is re-derived
// from the submitted components, so manual overrides (hazard, tax, special
// bonus, other deduction) flow into the persisted total.
func (s *PayrollServiceImpl) Save(ctx context.Context, req payroll.SaveRequest) ([]payroll.LineResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// The whole batch lands or none of it does.
	saved := make([]payroll.LineResponse, 0, len(req.Lines))
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, input := range req.Lines {
			if !user.CanAccessStore(identity.Role, identity.StoreID, input.StoreID) {
				return user.ErrStoreScopeDenied
			}

			line := lineFromInput(req.Month, input)
			line.NetPay = line.Net()

			record, err := s.payrollRepo.Upsert(txCtx, payroll.Record{Line: line})
			if err != nil {
				return fmt.Errorf("failed to save payroll for employee %s: %w", input.EmployeeID, err)
			}
			saved = append(saved, mapToLineResponse(record.Line))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payroll saved", "month", req.Month, "lines", len(saved), "by", identity.EmployeeID)
	return saved, nil
}

// Records implements payroll.PayrollService.
func (s *PayrollServiceImpl) Records(ctx context.Context, month string, storeID *string) ([]payroll.LineResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	scoped, err := s.scopeStore(identity, storeID)
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByMonth(ctx, month, scoped)
	if err != nil {
		return nil, err
	}

	lines := make([]payroll.LineResponse, 0, len(records))
	for _, rec := range records {
		lines = append(lines, mapToLineResponse(rec.Line))
	}
	return lines, nil
}

// Confirm implements payroll.PayrollService.
func (s *PayrollServiceImpl) Confirm(ctx context.Context, req payroll.ConfirmRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	slog.Info("payroll confirmed", "month", req.Month, "employees", len(req.EmployeeIDs), "by", identity.EmployeeID)
	return s.payrollRepo.Confirm(ctx, req.Month, req.EmployeeIDs)
}

// scopeStore resolves the effective store filter for the caller: head office
// may ask for any store or all of them, everyone else is pinned to their own.
func (s *PayrollServiceImpl) scopeStore(identity jwt.Identity, requested *string) (*string, error) {
	if identity.Role == user.RoleHeadOffice {
		return requested, nil
	}
	if requested != nil && *requested != identity.StoreID {
		return nil, user.ErrStoreScopeDenied
	}
	storeID := identity.StoreID
	return &storeID, nil
}

// holidaySet loads the configured calendar for a year, falling back to the
// built-in fixed calendar when none is configured.
func (s *PayrollServiceImpl) holidaySet(ctx context.Context, year int) (map[string]bool, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	if len(holidays) == 0 {
		slog.Info("no holiday calendar configured, using built-in calendar", "year", year)
		holidays = holiday.BuiltinCalendar(year)
	}

	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h.Date] = true
	}
	return set, nil
}

// foldTotals accumulates the month's daily summaries per employee. Days with
// an unrecorded clock-out carry no actual minutes and are excluded from
// completed-day counts.
func foldTotals(summaries []attendance.DailySummary) map[string]payroll.MonthTotals {
	totals := make(map[string]payroll.MonthTotals)
	for _, summary := range summaries {
		t := totals[summary.EmployeeID]
		t.LateMinutes += summary.LateMinutes
		if !summary.OnlyIn && summary.ActualMinutes != nil {
			t.WorkedMinutes += *summary.ActualMinutes
			t.OvertimeMinutes += summary.OvertimeMinutes
			t.WorkedDays++
			if summary.HolidayWork {
				t.HolidayDays++
			}
		}
		totals[summary.EmployeeID] = t
	}
	return totals
}

func lineFromInput(month string, input payroll.LineInput) payroll.Line {
	return payroll.Line{
		PeriodMonth:       month,
		StoreID:           input.StoreID,
		EmployeeID:        input.EmployeeID,
		EmployeeName:      input.EmployeeName,
		PayType:           employee.PayType(input.PayType),
		WorkedMinutes:     input.WorkedMinutes,
		LateMinutes:       input.LateMinutes,
		OvertimeMinutes:   input.OvertimeMinutes,
		HolidayDays:       input.HolidayDays,
		BasePay:           input.BasePay,
		PositionAllowance: input.PositionAllowance,
		HazardAllowance:   input.HazardAllowance,
		BirthdayBonus:     input.BirthdayBonus,
		SpecialBonus:      input.SpecialBonus,
		HolidayPay:        input.HolidayPay,
		OvertimePay:       input.OvertimePay,
		LateDeduction:     input.LateDeduction,
		SocialSecurity:    input.SocialSecurity,
		Tax:               input.Tax,
		OtherDeduction:    input.OtherDeduction,
		Status:            payroll.RecordStatusPending,
	}
}

func mapToLineResponse(line payroll.Line) payroll.LineResponse {
	return payroll.LineResponse{
		PeriodMonth:       line.PeriodMonth,
		StoreID:           line.StoreID,
		EmployeeID:        line.EmployeeID,
		EmployeeName:      line.EmployeeName,
		PayType:           string(line.PayType),
		WorkedMinutes:     line.WorkedMinutes,
		LateMinutes:       line.LateMinutes,
		OvertimeMinutes:   line.OvertimeMinutes,
		HolidayDays:       line.HolidayDays,
		BasePay:           line.BasePay,
		PositionAllowance: line.PositionAllowance,
		HazardAllowance:   line.HazardAllowance,
		BirthdayBonus:     line.BirthdayBonus,
		SpecialBonus:      line.SpecialBonus,
		HolidayPay:        line.HolidayPay,
		OvertimePay:       line.OvertimePay,
		LateDeduction:     line.LateDeduction,
		SocialSecurity:    line.SocialSecurity,
		Tax:               line.Tax,
		OtherDeduction:    line.OtherDeduction,
		NetPay:            line.NetPay,
		Status:            string(line.Status),
	}
}
