package reminders

import "time"

// DoseReminder es una toma concreta derivada de un Schedule.
// Una fila por dosis: se marca tomada o saltada de forma independiente.
// El ID lo asigna el storage al crear (0 = aún no persistido).
type DoseReminder struct {
	ID int64

	// Denormalizado a propósito: MedicineID permite consultar por medicamento
	// sin pasar por el schedule.
	ScheduleID int64
	MedicineID int64

	ScheduledTime time.Time

	// TakenAt solo se setea al pasar a taken. Saltar una dosis que ya estuvo
	// tomada NO borra el TakenAt histórico.
	TakenAt   *time.Time
	IsTaken   bool
	IsSkipped bool

	CreatedAt time.Time
}

// MarkTaken devuelve una copia en estado taken. Siempre resetea IsSkipped y
// actualiza TakenAt, también si ya estaba tomada (re-marcar refresca la hora).
func (d DoseReminder) MarkTaken(now time.Time) DoseReminder {
	d.IsTaken = true
	d.IsSkipped = false
	t := now
	d.TakenAt = &t
	return d
}

// MarkSkipped devuelve una copia en estado skipped. Resetea IsTaken pero
// conserva TakenAt: asimetría deliberada, el histórico de toma no se pierde.
func (d DoseReminder) MarkSkipped() DoseReminder {
	d.IsTaken = false
	d.IsSkipped = true
	return d
}

// IsPending: ni tomada ni saltada (vencida o no).
func (d DoseReminder) IsPending() bool {
	return !d.IsTaken && !d.IsSkipped
}

// IsOverdue: pendiente y con la hora programada ya pasada.
func (d DoseReminder) IsOverdue(now time.Time) bool {
	return d.IsPending() && now.After(d.ScheduledTime)
}

// Status deriva el estado visible. overdue no se persiste: es una vista
// calculada sobre pending para evitar estados rancios en storage.
func (d DoseReminder) Status(now time.Time) Status {
	switch {
	case d.IsTaken:
		return StatusTaken
	case d.IsSkipped:
		return StatusSkipped
	case d.IsOverdue(now):
		return StatusOverdue
	default:
		return StatusPending
	}
}
