package schedules

import "time"

// Schedule define la recurrencia de un tratamiento: cada cuántas horas y por
// cuántos días se toma un medicamento, empezando a qué hora del día.
// El ID lo asigna el storage al crear (0 = aún no persistido).
type Schedule struct {
	ID         int64
	MedicineID int64

	// Horas entre dosis dentro de un mismo día. Rango válido: [1, 24].
	IntervalHours int
	// Días totales de tratamiento. Mínimo 1.
	DurationDays int

	// Hora de la primera dosis de cada día. Acepta "HH:MM" (hoy a esa hora)
	// o RFC3339 (la fecha del timestamp define el día de inicio).
	StartTime string

	Notes string

	// IsActive permite desactivar sin borrar el histórico.
	IsActive bool

	CreatedAt time.Time
}
