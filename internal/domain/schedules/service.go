package schedules

import (
	"context"
	"errors"
	"strings"
	"time"

	"med-dose-tracker/internal/domain/reminders"
)

var (
	ErrNotFound  = errors.New("schedule not found")
	ErrMissingID = errors.New("schedule id required")
)

type Service struct {
	repo    Repository
	remRepo reminders.Repository
	now     func() time.Time
}

func NewService(repo Repository, remRepo reminders.Repository) *Service {
	return &Service{
		repo:    repo,
		remRepo: remRepo,
		now:     time.Now,
	}
}

type CreateInput struct {
	MedicineID    int64
	IntervalHours int
	DurationDays  int
	StartTime     string
	Notes         string
}

// Create persiste el schedule y todos sus dose reminders expandidos como una
// operación lógica: el batch de reminders es atómico y, si falla, se borra el
// schedule recién creado (compensación; no hay tx que cruce ambos repos).
// La validación va primero: con entrada inválida no se persiste nada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Schedule, []reminders.DoseReminder, error) {
	if in.MedicineID <= 0 {
		return Schedule{}, nil, ErrInvalidSchedule
	}

	now := s.now()
	sched := Schedule{
		MedicineID:    in.MedicineID,
		IntervalHours: in.IntervalHours,
		DurationDays:  in.DurationDays,
		StartTime:     strings.TrimSpace(in.StartTime),
		Notes:         strings.TrimSpace(in.Notes),
		IsActive:      true,
		CreatedAt:     now,
	}

	if err := Validate(sched); err != nil {
		return Schedule{}, nil, err
	}

	sched, err := s.repo.Create(ctx, sched)
	if err != nil {
		return Schedule{}, nil, err
	}

	ds, err := Expand(sched, now)
	if err != nil {
		// no debería pasar: ya validamos antes de crear
		_ = s.repo.Delete(ctx, sched.ID)
		return Schedule{}, nil, err
	}

	saved, err := s.remRepo.CreateBatch(ctx, ds)
	if err != nil {
		_ = s.repo.Delete(ctx, sched.ID)
		return Schedule{}, nil, err
	}

	return sched, saved, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Schedule, error) {
	if id <= 0 {
		return Schedule{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByMedicine(ctx context.Context, medicineID int64) ([]Schedule, error) {
	return s.repo.ListByMedicine(ctx, medicineID)
}

// Deactivate apaga el schedule sin tocar sus reminders ya generados.
func (s *Service) Deactivate(ctx context.Context, id int64) (Schedule, error) {
	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Schedule{}, err
	}

	sched.IsActive = false
	if err := s.repo.Update(ctx, sched); err != nil {
		return Schedule{}, err
	}
	return sched, nil
}

// Delete borra el schedule y en cascada sus dose reminders.
// Primero los reminders: si falla, el schedule sigue y se puede reintentar.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	if err := s.remRepo.DeleteBySchedule(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// DeleteByMedicine implementa la cascada que usa el módulo de medicines.
func (s *Service) DeleteByMedicine(ctx context.Context, medicineID int64) error {
	if medicineID <= 0 {
		return nil
	}
	if err := s.remRepo.DeleteByMedicine(ctx, medicineID); err != nil {
		return err
	}
	return s.repo.DeleteByMedicine(ctx, medicineID)
}
