package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/choongman-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// requireTestDB connects once per run and skips when no test database is
// configured, so the suite stays green on machines without PostgreSQL.
func requireTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn, 5, 1)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func truncateAttendanceTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"attendance_events", "scheduled_shifts", "employees", "stores"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestStore(t *testing.T, ctx context.Context, db *database.DB) string {
	var storeID string
	err := db.QueryRow(ctx, `
		INSERT INTO stores (name, timezone, latitude, longitude, radius_meters, is_head_office, created_at, updated_at)
		VALUES ('Test Branch', 'Asia/Bangkok', 13.7563, 100.5018, 100, false, NOW(), NOW())
		RETURNING id
	`).Scan(&storeID)
	require.NoError(t, err)
	return storeID
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, storeID string) string {
	var employeeID string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (store_id, full_name, pay_type, pay_amount, position_allowance, hire_date, annual_leave_days, created_at, updated_at)
		VALUES ($1, 'Test Employee', 'monthly', 20000, 0, '2023-01-16', 6, NOW(), NOW())
		RETURNING id
	`, storeID).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func TestAttendanceRepositoryCreateMapsDuplicate(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx, db)

	storeID := createTestStore(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, storeID)
	repo := postgresql.NewAttendanceRepository(db)

	event := attendance.Event{
		StoreID:    storeID,
		EmployeeID: employeeID,
		Type:       attendance.EventClockIn,
		WorkDate:   "2025-03-10",
		OccurredAt: time.Now().UTC(),
		Status:     attendance.StatusNormal,
		Approval:   attendance.ApprovalPending,
	}

	created, err := repo.Create(ctx, event)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, event)
	assert.ErrorIs(t, err, attendance.ErrDuplicateEvent)

	// A different event type on the same day is still allowed.
	event.Type = attendance.EventClockOut
	_, err = repo.Create(ctx, event)
	assert.NoError(t, err)
}

func TestAttendanceRepositoryGetForDayMissing(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx, db)

	storeID := createTestStore(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, storeID)
	repo := postgresql.NewAttendanceRepository(db)

	got, err := repo.GetForDay(ctx, storeID, employeeID, attendance.EventClockIn, "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttendanceRepositoryUpdateApprovalOnce(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx, db)

	storeID := createTestStore(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, storeID)
	managerID := createTestEmployee(t, ctx, db, storeID)
	repo := postgresql.NewAttendanceRepository(db)

	created, err := repo.Create(ctx, attendance.Event{
		StoreID:         storeID,
		EmployeeID:      employeeID,
		Type:            attendance.EventClockOut,
		WorkDate:        "2025-03-10",
		OccurredAt:      time.Now().UTC(),
		OvertimeMinutes: 45,
		Status:          attendance.StatusOvertime,
		Approval:        attendance.ApprovalPending,
	})
	require.NoError(t, err)

	override := 30
	err = repo.UpdateApproval(ctx, created.ID, attendance.ApprovalApproved, managerID, &override)
	require.NoError(t, err)

	settled, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.ApprovalApproved, settled.Approval)
	assert.Equal(t, 30, settled.OvertimeMinutes)

	// A settled event cannot be settled again.
	err = repo.UpdateApproval(ctx, created.ID, attendance.ApprovalRejected, managerID, nil)
	assert.ErrorIs(t, err, attendance.ErrAlreadyProcessed)
}
