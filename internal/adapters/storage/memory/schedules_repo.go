package memory

import (
	"context"
	"sort"
	"sync"

	"med-dose-tracker/internal/domain/schedules"
)

type schedulesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]schedules.Schedule
}

func NewSchedulesRepo() schedules.Repository {
	return &schedulesRepo{
		nextID: 1,
		byID:   make(map[int64]schedules.Schedule),
	}
}

func (r *schedulesRepo) Create(ctx context.Context, s schedules.Schedule) (schedules.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.byID[s.ID] = s
	return s, nil
}

func (r *schedulesRepo) GetByID(ctx context.Context, id int64) (schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return schedules.Schedule{}, schedules.ErrNotFound
	}
	return s, nil
}

func (r *schedulesRepo) ListByMedicine(ctx context.Context, medicineID int64) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, 0)
	for _, s := range r.byID {
		if s.MedicineID == medicineID {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *schedulesRepo) Update(ctx context.Context, s schedules.Schedule) error {
	if s.ID == 0 {
		return schedules.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return schedules.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *schedulesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *schedulesRepo) DeleteByMedicine(ctx context.Context, medicineID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.byID {
		if s.MedicineID == medicineID {
			delete(r.byID, id)
		}
	}
	return nil
}
