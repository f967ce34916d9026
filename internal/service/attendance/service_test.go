package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/domain/schedule"
	"github.com/choongman-erp/erp-backend-go/internal/domain/store"
	"github.com/choongman-erp/erp-backend-go/internal/domain/user"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/utils"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events  []attendance.Event
	created []attendance.Event
}

func (f *fakeEventRepo) Create(_ context.Context, event attendance.Event) (attendance.Event, error) {
	event.ID = uuid.NewString()
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (attendance.Event, error) {
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return attendance.Event{}, attendance.ErrEventNotFound
}

func (f *fakeEventRepo) GetForDay(_ context.Context, storeID, employeeID string, eventType attendance.EventType, workDate string) (*attendance.Event, error) {
	for i := range f.events {
		ev := &f.events[i]
		if ev.StoreID == storeID && ev.EmployeeID == employeeID && ev.Type == eventType && ev.WorkDate == workDate {
			return ev, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) ListRange(_ context.Context, _ attendance.ListFilter) ([]attendance.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) UpdateApproval(_ context.Context, _ string, _ attendance.Approval, _ string, _ *int) error {
	return nil
}

type fakeShiftRepo struct {
	shift *schedule.Shift
}

func (f *fakeShiftRepo) GetByDate(_ context.Context, _, _, _ string) (*schedule.Shift, error) {
	return f.shift, nil
}

func (f *fakeShiftRepo) ListRange(_ context.Context, _, _ string, _, _ *string) ([]schedule.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Upsert(_ context.Context, shift schedule.Shift) (schedule.Shift, error) {
	return shift, nil
}

type fakeStoreRepo struct {
	store store.Store
}

func (f *fakeStoreRepo) GetByID(_ context.Context, _ string) (store.Store, error) {
	return f.store, nil
}

func (f *fakeStoreRepo) List(_ context.Context, _ bool) ([]store.Store, error) {
	return []store.Store{f.store}, nil
}

func identityContext(t *testing.T, employeeID, storeID string, role user.Role) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"store_id":    storeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestSubmitBreakEndWithoutShiftStillMeasuresBreak(t *testing.T) {
	storeID := uuid.NewString()
	employeeID := uuid.NewString()
	loc, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)
	workDate := utils.LocalDate(time.Now().UTC(), loc)

	eventRepo := &fakeEventRepo{
		events: []attendance.Event{{
			ID:         uuid.NewString(),
			StoreID:    storeID,
			EmployeeID: employeeID,
			Type:       attendance.EventBreakStart,
			WorkDate:   workDate,
			OccurredAt: time.Now().UTC().Add(-45*time.Minute - 30*time.Second),
			Status:     attendance.StatusNormal,
			Approval:   attendance.ApprovalPending,
		}},
	}
	storeRepo := &fakeStoreRepo{store: store.Store{
		ID:       storeID,
		Name:     "Test Branch",
		Timezone: "Asia/Bangkok",
	}}
	svc := NewAttendanceService(nil, eventRepo, &fakeShiftRepo{}, storeRepo)

	ctx := identityContext(t, employeeID, storeID, user.RoleStaff)
	resp, err := svc.SubmitEvent(ctx, attendance.SubmitEventRequest{
		StoreID: storeID,
		Type:    string(attendance.EventBreakEnd),
	})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)

	require.Len(t, eventRepo.created, 1)
	created := eventRepo.created[0]
	assert.Equal(t, 45, created.BreakMinutes)
	// No planned break window exists, so the duration is recorded unjudged.
	assert.Equal(t, attendance.StatusNormal, created.Status)
}

func TestSubmitClockInWithoutShiftRecordsUnscored(t *testing.T) {
	storeID := uuid.NewString()
	employeeID := uuid.NewString()

	eventRepo := &fakeEventRepo{}
	storeRepo := &fakeStoreRepo{store: store.Store{
		ID:       storeID,
		Name:     "Test Branch",
		Timezone: "Asia/Bangkok",
	}}
	svc := NewAttendanceService(nil, eventRepo, &fakeShiftRepo{}, storeRepo)

	ctx := identityContext(t, employeeID, storeID, user.RoleStaff)
	resp, err := svc.SubmitEvent(ctx, attendance.SubmitEventRequest{
		StoreID: storeID,
		Type:    string(attendance.EventClockIn),
	})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)

	require.Len(t, eventRepo.created, 1)
	created := eventRepo.created[0]
	assert.Equal(t, attendance.StatusNormal, created.Status)
	assert.Equal(t, 0, created.LateMinutes)
	assert.Nil(t, created.PlannedTime)
}
