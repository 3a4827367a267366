package schedules

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-dose-tracker/internal/domain/reminders"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testScheduleRepo struct {
	nextID  int64
	byID    map[int64]Schedule
	deleted []int64
}

func newTestScheduleRepo() *testScheduleRepo {
	return &testScheduleRepo{nextID: 1, byID: map[int64]Schedule{}}
}

func (r *testScheduleRepo) Create(ctx context.Context, s Schedule) (Schedule, error) {
	s.ID = r.nextID
	r.nextID++
	r.byID[s.ID] = s
	return s, nil
}

func (r *testScheduleRepo) GetByID(ctx context.Context, id int64) (Schedule, error) {
	s, ok := r.byID[id]
	if !ok {
		return Schedule{}, ErrNotFound
	}
	return s, nil
}

func (r *testScheduleRepo) ListByMedicine(ctx context.Context, medicineID int64) ([]Schedule, error) {
	out := make([]Schedule, 0)
	for _, s := range r.byID {
		if s.MedicineID == medicineID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *testScheduleRepo) Update(ctx context.Context, s Schedule) error {
	if s.ID == 0 {
		return ErrMissingID
	}
	if _, ok := r.byID[s.ID]; !ok {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testScheduleRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *testScheduleRepo) DeleteByMedicine(ctx context.Context, medicineID int64) error {
	for id, s := range r.byID {
		if s.MedicineID == medicineID {
			delete(r.byID, id)
		}
	}
	return nil
}

type testReminderRepo struct {
	nextID int64
	byID   map[int64]reminders.DoseReminder

	failBatch error

	deletedBySchedule []int64
	deletedByMedicine []int64
}

func newTestReminderRepo() *testReminderRepo {
	return &testReminderRepo{nextID: 1, byID: map[int64]reminders.DoseReminder{}}
}

func (r *testReminderRepo) Create(ctx context.Context, d reminders.DoseReminder) (reminders.DoseReminder, error) {
	d.ID = r.nextID
	r.nextID++
	r.byID[d.ID] = d
	return d, nil
}

func (r *testReminderRepo) CreateBatch(ctx context.Context, ds []reminders.DoseReminder) ([]reminders.DoseReminder, error) {
	if r.failBatch != nil {
		return nil, r.failBatch
	}
	out := make([]reminders.DoseReminder, 0, len(ds))
	for _, d := range ds {
		saved, _ := r.Create(ctx, d)
		out = append(out, saved)
	}
	return out, nil
}

func (r *testReminderRepo) GetByID(ctx context.Context, id int64) (reminders.DoseReminder, error) {
	d, ok := r.byID[id]
	if !ok {
		return reminders.DoseReminder{}, reminders.ErrNotFound
	}
	return d, nil
}

func (r *testReminderRepo) ListBySchedule(ctx context.Context, scheduleID int64) ([]reminders.DoseReminder, error) {
	out := make([]reminders.DoseReminder, 0)
	for _, d := range r.byID {
		if d.ScheduleID == scheduleID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testReminderRepo) ListByMedicine(ctx context.Context, medicineID int64) ([]reminders.DoseReminder, error) {
	return nil, nil
}

func (r *testReminderRepo) ListPending(ctx context.Context) ([]reminders.DoseReminder, error) {
	return nil, nil
}

func (r *testReminderRepo) ListOverdue(ctx context.Context, now time.Time) ([]reminders.DoseReminder, error) {
	return nil, nil
}

func (r *testReminderRepo) ListTaken(ctx context.Context) ([]reminders.DoseReminder, error) {
	return nil, nil
}

func (r *testReminderRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]reminders.DoseReminder, error) {
	return nil, nil
}

func (r *testReminderRepo) ListAll(ctx context.Context) ([]reminders.DoseReminder, error) {
	return nil, nil
}

func (r *testReminderRepo) Update(ctx context.Context, d reminders.DoseReminder) error { return nil }

func (r *testReminderRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *testReminderRepo) DeleteBySchedule(ctx context.Context, scheduleID int64) error {
	for id, d := range r.byID {
		if d.ScheduleID == scheduleID {
			delete(r.byID, id)
		}
	}
	r.deletedBySchedule = append(r.deletedBySchedule, scheduleID)
	return nil
}

func (r *testReminderRepo) DeleteByMedicine(ctx context.Context, medicineID int64) error {
	r.deletedByMedicine = append(r.deletedByMedicine, medicineID)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_PersistsScheduleAndReminders(t *testing.T) {
	schedRepo := newTestScheduleRepo()
	remRepo := newTestReminderRepo()
	svc := NewService(schedRepo, remRepo)

	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sched, ds, err := svc.Create(context.Background(), CreateInput{
		MedicineID:    1,
		IntervalHours: 6,
		DurationDays:  1,
		StartTime:     "00:00",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sched.ID == 0 {
		t.Fatalf("expected schedule identity assigned")
	}
	if !sched.IsActive {
		t.Fatalf("expected new schedule active")
	}
	if len(ds) != 4 {
		t.Fatalf("expected 4 reminders, got %d", len(ds))
	}
	for i, d := range ds {
		if d.ID == 0 {
			t.Fatalf("reminder %d without identity", i)
		}
		if d.ScheduleID != sched.ID {
			t.Fatalf("reminder %d references schedule %d, expected %d", i, d.ScheduleID, sched.ID)
		}
	}
}

func TestService_Create_InvalidInput_PersistsNothing(t *testing.T) {
	schedRepo := newTestScheduleRepo()
	remRepo := newTestReminderRepo()
	svc := NewService(schedRepo, remRepo)

	_, _, err := svc.Create(context.Background(), CreateInput{
		MedicineID:    1,
		IntervalHours: 0,
		DurationDays:  1,
		StartTime:     "08:00",
	})
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
	if len(schedRepo.byID) != 0 || len(remRepo.byID) != 0 {
		t.Fatalf("invalid input must not persist anything")
	}
}

func TestService_Create_BatchFailure_RollsBackSchedule(t *testing.T) {
	schedRepo := newTestScheduleRepo()
	remRepo := newTestReminderRepo()
	remRepo.failBatch = errors.New("constraint violation")
	svc := NewService(schedRepo, remRepo)

	_, _, err := svc.Create(context.Background(), CreateInput{
		MedicineID:    1,
		IntervalHours: 8,
		DurationDays:  2,
		StartTime:     "08:00",
	})
	if err == nil {
		t.Fatalf("expected error from failed batch")
	}

	// todo o nada: el schedule creado se compensa con delete
	if len(schedRepo.byID) != 0 {
		t.Fatalf("expected schedule rolled back, still have %d", len(schedRepo.byID))
	}
	if len(schedRepo.deleted) != 1 {
		t.Fatalf("expected one compensating delete, got %v", schedRepo.deleted)
	}
}

func TestService_Deactivate_KeepsHistory(t *testing.T) {
	schedRepo := newTestScheduleRepo()
	remRepo := newTestReminderRepo()
	svc := NewService(schedRepo, remRepo)

	sched, ds, err := svc.Create(context.Background(), CreateInput{
		MedicineID:    1,
		IntervalHours: 12,
		DurationDays:  1,
		StartTime:     "08:00",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Deactivate(context.Background(), sched.ID)
	if err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected schedule inactive")
	}

	// los reminders ya generados no se tocan
	left, _ := remRepo.ListBySchedule(context.Background(), sched.ID)
	if len(left) != len(ds) {
		t.Fatalf("deactivate must not touch reminders: had %d, left %d", len(ds), len(left))
	}
}

func TestService_Deactivate_NotFound(t *testing.T) {
	svc := NewService(newTestScheduleRepo(), newTestReminderRepo())

	_, err := svc.Deactivate(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_CascadesReminders(t *testing.T) {
	schedRepo := newTestScheduleRepo()
	remRepo := newTestReminderRepo()
	svc := NewService(schedRepo, remRepo)

	sched, _, err := svc.Create(context.Background(), CreateInput{
		MedicineID:    1,
		IntervalHours: 8,
		DurationDays:  1,
		StartTime:     "08:00",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), sched.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := schedRepo.GetByID(context.Background(), sched.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected schedule gone, got %v", err)
	}
	left, _ := remRepo.ListBySchedule(context.Background(), sched.ID)
	if len(left) != 0 {
		t.Fatalf("expected reminders cascaded, %d left", len(left))
	}
}

func TestService_DeleteByMedicine_CascadesBoth(t *testing.T) {
	schedRepo := newTestScheduleRepo()
	remRepo := newTestReminderRepo()
	svc := NewService(schedRepo, remRepo)

	if _, _, err := svc.Create(context.Background(), CreateInput{
		MedicineID:    3,
		IntervalHours: 8,
		DurationDays:  1,
		StartTime:     "08:00",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.DeleteByMedicine(context.Background(), 3); err != nil {
		t.Fatalf("DeleteByMedicine returned error: %v", err)
	}

	if len(remRepo.deletedByMedicine) != 1 || remRepo.deletedByMedicine[0] != 3 {
		t.Fatalf("expected reminder cascade by medicine, got %v", remRepo.deletedByMedicine)
	}
	list, _ := schedRepo.ListByMedicine(context.Background(), 3)
	if len(list) != 0 {
		t.Fatalf("expected schedules gone, %d left", len(list))
	}
}
