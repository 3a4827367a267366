package notify

import (
	"context"
	"time"
)

// DoseNotification es lo único que el core entrega al scheduler de
// notificaciones externo: identidad de la dosis y datos para el mensaje.
// El envío del push en sí no es asunto de este sistema.
type DoseNotification struct {
	ReminderID    int64     `json:"reminder_id"`
	MedicineName  string    `json:"medicine_name"`
	Dosage        string    `json:"dosage"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

// Scheduler recibe dosis vencidas para notificar.
type Scheduler interface {
	Schedule(ctx context.Context, n DoseNotification) error
}
