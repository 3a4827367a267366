package reminders

import (
	"context"
	"time"
)

// Repository es el contrato que deben cumplir todos los backends de storage
// con comportamiento observable idéntico (mismo orden, mismos errores).
//
// Orden: ScheduledTime asc con desempate por id asc, salvo ListTaken que
// ordena por TakenAt asc. ListOverdue se evalúa contra el now recibido en
// cada llamada, nunca contra un campo almacenado.
type Repository interface {
	// Create asigna identidad y devuelve la entidad persistida.
	Create(ctx context.Context, d DoseReminder) (DoseReminder, error)
	// CreateBatch persiste todo o nada (tx en backends SQL).
	CreateBatch(ctx context.Context, ds []DoseReminder) ([]DoseReminder, error)

	GetByID(ctx context.Context, id int64) (DoseReminder, error)
	ListBySchedule(ctx context.Context, scheduleID int64) ([]DoseReminder, error)
	ListByMedicine(ctx context.Context, medicineID int64) ([]DoseReminder, error)
	ListPending(ctx context.Context) ([]DoseReminder, error)
	ListOverdue(ctx context.Context, now time.Time) ([]DoseReminder, error)
	ListTaken(ctx context.Context) ([]DoseReminder, error)
	// ListByDateRange usa intervalo semiabierto: from <= ScheduledTime < to.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]DoseReminder, error)
	ListAll(ctx context.Context) ([]DoseReminder, error)

	// Update persiste el estado completo tras una transición.
	// Falla con ErrMissingID si la entidad no tiene identidad.
	Update(ctx context.Context, d DoseReminder) error

	// Deletes idempotentes: borrar lo inexistente no es error.
	Delete(ctx context.Context, id int64) error
	DeleteBySchedule(ctx context.Context, scheduleID int64) error
	DeleteByMedicine(ctx context.Context, medicineID int64) error
}
