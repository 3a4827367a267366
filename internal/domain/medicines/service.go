package medicines

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medicine not found")
)

// Cascade borra los schedules y reminders asociados a un medicamento.
// Lo implementa el módulo de schedules; se inyecta para no acoplar paquetes.
type Cascade interface {
	DeleteByMedicine(ctx context.Context, medicineID int64) error
}

type Service struct {
	repo    Repository
	cascade Cascade // puede ser nil (sin cascada, solo storage con FK)
	now     func() time.Time
}

func NewService(repo Repository, cascade Cascade) *Service {
	return &Service{
		repo:    repo,
		cascade: cascade,
		now:     time.Now,
	}
}

type CreateInput struct {
	Name   string
	Dosage string
	Notes  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medicine, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Medicine{}, ErrInvalidInput
	}

	m := Medicine{
		Name:      strings.TrimSpace(in.Name),
		Dosage:    strings.TrimSpace(in.Dosage),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}

	return s.repo.Create(ctx, m)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Medicine, error) {
	if id <= 0 {
		return Medicine{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Medicine, error) {
	return s.repo.List(ctx)
}

// Delete borra el medicamento y, en cascada, sus schedules y reminders.
// Primero la cascada: si falla, el medicamento sigue existiendo y se puede reintentar.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	if s.cascade != nil {
		if err := s.cascade.DeleteByMedicine(ctx, id); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}
