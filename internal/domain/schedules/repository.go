package schedules

import "context"

type Repository interface {
	// Create asigna identidad y devuelve la entidad persistida.
	Create(ctx context.Context, s Schedule) (Schedule, error)
	GetByID(ctx context.Context, id int64) (Schedule, error)
	// ListByMedicine ordena por created_at ascendente.
	ListByMedicine(ctx context.Context, medicineID int64) ([]Schedule, error)
	// Update persiste el estado completo. ErrMissingID si no hay identidad.
	Update(ctx context.Context, s Schedule) error
	// Deletes idempotentes.
	Delete(ctx context.Context, id int64) error
	DeleteByMedicine(ctx context.Context, medicineID int64) error
}
