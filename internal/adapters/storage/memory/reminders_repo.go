package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"med-dose-tracker/internal/domain/reminders"
)

type remindersRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]reminders.DoseReminder
}

func NewRemindersRepo() reminders.Repository {
	return &remindersRepo{
		nextID: 1,
		byID:   make(map[int64]reminders.DoseReminder),
	}
}

func (r *remindersRepo) Create(ctx context.Context, d reminders.DoseReminder) (reminders.DoseReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextID
	r.nextID++
	r.byID[d.ID] = d
	return d, nil
}

// CreateBatch bajo un solo lock: o entran todas las dosis o ninguna.
func (r *remindersRepo) CreateBatch(ctx context.Context, ds []reminders.DoseReminder) ([]reminders.DoseReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]reminders.DoseReminder, 0, len(ds))
	for _, d := range ds {
		d.ID = r.nextID
		r.nextID++
		r.byID[d.ID] = d
		out = append(out, d)
	}
	return out, nil
}

func (r *remindersRepo) GetByID(ctx context.Context, id int64) (reminders.DoseReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return reminders.DoseReminder{}, reminders.ErrNotFound
	}
	return d, nil
}

func (r *remindersRepo) ListBySchedule(ctx context.Context, scheduleID int64) ([]reminders.DoseReminder, error) {
	return r.list(func(d reminders.DoseReminder) bool {
		return d.ScheduleID == scheduleID
	}), nil
}

func (r *remindersRepo) ListByMedicine(ctx context.Context, medicineID int64) ([]reminders.DoseReminder, error) {
	return r.list(func(d reminders.DoseReminder) bool {
		return d.MedicineID == medicineID
	}), nil
}

func (r *remindersRepo) ListPending(ctx context.Context) ([]reminders.DoseReminder, error) {
	return r.list(func(d reminders.DoseReminder) bool {
		return !d.IsTaken && !d.IsSkipped
	}), nil
}

func (r *remindersRepo) ListOverdue(ctx context.Context, now time.Time) ([]reminders.DoseReminder, error) {
	return r.list(func(d reminders.DoseReminder) bool {
		return !d.IsTaken && !d.IsSkipped && d.ScheduledTime.Before(now)
	}), nil
}

func (r *remindersRepo) ListTaken(ctx context.Context) ([]reminders.DoseReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reminders.DoseReminder, 0)
	for _, d := range r.byID {
		if d.IsTaken {
			out = append(out, d)
		}
	}

	// Historial: orden por taken_at, no por scheduled_time.
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].TakenAt, out[j].TakenAt
		if ti != nil && tj != nil && !ti.Equal(*tj) {
			return ti.Before(*tj)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *remindersRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]reminders.DoseReminder, error) {
	// Semiabierto: from inclusivo, to exclusivo.
	return r.list(func(d reminders.DoseReminder) bool {
		return !d.ScheduledTime.Before(from) && d.ScheduledTime.Before(to)
	}), nil
}

func (r *remindersRepo) ListAll(ctx context.Context) ([]reminders.DoseReminder, error) {
	return r.list(func(reminders.DoseReminder) bool { return true }), nil
}

func (r *remindersRepo) Update(ctx context.Context, d reminders.DoseReminder) error {
	if d.ID == 0 {
		return reminders.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[d.ID]; !ok {
		return reminders.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *remindersRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *remindersRepo) DeleteBySchedule(ctx context.Context, scheduleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, d := range r.byID {
		if d.ScheduleID == scheduleID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *remindersRepo) DeleteByMedicine(ctx context.Context, medicineID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, d := range r.byID {
		if d.MedicineID == medicineID {
			delete(r.byID, id)
		}
	}
	return nil
}

// list filtra y devuelve en el orden canónico del contrato:
// scheduled_time asc con desempate por id asc.
func (r *remindersRepo) list(keep func(reminders.DoseReminder) bool) []reminders.DoseReminder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reminders.DoseReminder, 0)
	for _, d := range r.byID {
		if keep(d) {
			out = append(out, d)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledTime.Equal(out[j].ScheduledTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})

	return out
}
