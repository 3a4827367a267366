package reminders

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound lo devuelven también los adapters de storage para que el
	// contrato sea idéntico entre backends (errors.Is en los callers).
	ErrNotFound = errors.New("reminder not found")

	// ErrMissingID: Update sobre una entidad sin identidad persistida.
	ErrMissingID = errors.New("reminder id required")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// MarkTaken carga, transiciona y persiste. Si el reminder no existe falla
// explícitamente con ErrNotFound, nunca sigue con una entidad vacía.
func (s *Service) MarkTaken(ctx context.Context, id int64) (DoseReminder, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DoseReminder{}, err
	}

	d = d.MarkTaken(s.now())
	if err := s.repo.Update(ctx, d); err != nil {
		return DoseReminder{}, err
	}
	return d, nil
}

func (s *Service) MarkSkipped(ctx context.Context, id int64) (DoseReminder, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DoseReminder{}, err
	}

	d = d.MarkSkipped()
	if err := s.repo.Update(ctx, d); err != nil {
		return DoseReminder{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (DoseReminder, error) {
	if id <= 0 {
		return DoseReminder{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBySchedule(ctx context.Context, scheduleID int64) ([]DoseReminder, error) {
	return s.repo.ListBySchedule(ctx, scheduleID)
}

func (s *Service) ListByMedicine(ctx context.Context, medicineID int64) ([]DoseReminder, error) {
	return s.repo.ListByMedicine(ctx, medicineID)
}

func (s *Service) ListPending(ctx context.Context) ([]DoseReminder, error) {
	return s.repo.ListPending(ctx)
}

// ListOverdue se evalúa contra el reloj en el momento de la consulta: dos
// llamadas seguidas pueden devolver conjuntos distintos y eso es correcto.
func (s *Service) ListOverdue(ctx context.Context) ([]DoseReminder, error) {
	return s.repo.ListOverdue(ctx, s.now())
}

func (s *Service) ListTaken(ctx context.Context) ([]DoseReminder, error) {
	return s.repo.ListTaken(ctx)
}

func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time) ([]DoseReminder, error) {
	return s.repo.ListByDateRange(ctx, from, to)
}

func (s *Service) ListAll(ctx context.Context) ([]DoseReminder, error) {
	return s.repo.ListAll(ctx)
}

// DueForHandoff devuelve las dosis pendientes ya vencidas en este instante,
// listas para entregarse al scheduler de notificaciones externo.
func (s *Service) DueForHandoff(ctx context.Context) ([]DoseReminder, error) {
	return s.repo.ListOverdue(ctx, s.now())
}
