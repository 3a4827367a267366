package schedules

import (
	"errors"
	"fmt"
	"time"

	"med-dose-tracker/internal/domain/reminders"
)

var (
	// ErrInvalidSchedule: start_time no parseable o interval/duration fuera
	// de rango. La expansión no produce nada si la entrada es inválida.
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// Tope de dosis por día: corta la generación descontrolada si algún día un
// intervalo queda mal configurado (p.ej. sub-horario). Truncado silencioso.
const maxDosesPerDay = 10

const timeOfDayLayout = "15:04"

// Validate aplica las invariantes de expansión. Obligatorio en el borde:
// ningún call site puede saltárselo porque Expand lo vuelve a aplicar.
func Validate(s Schedule) error {
	if s.IntervalHours < 1 || s.IntervalHours > 24 {
		return fmt.Errorf("%w: interval_hours must be in [1, 24], got %d", ErrInvalidSchedule, s.IntervalHours)
	}
	if s.DurationDays < 1 {
		return fmt.Errorf("%w: duration_days must be >= 1, got %d", ErrInvalidSchedule, s.DurationDays)
	}
	if _, err := parseStart(s.StartTime, time.Now()); err != nil {
		return err
	}
	return nil
}

// Expand materializa la recurrencia en dose reminders concretos, sin persistir.
// Función pura y síncrona: todo sale de s y de now, no toca I/O.
//
// Por cada día del tratamiento las dosis arrancan de nuevo a la hora de
// inicio, en vez de arrastrar el intervalo a través de la medianoche: "cada
// 8h desde las 08:00" son 08:00 y 16:00 cada día, no una serie que deriva.
// La dosis que cruzaría al día siguiente simplemente no ocurre.
func Expand(s Schedule, now time.Time) ([]reminders.DoseReminder, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	start, err := parseStart(s.StartTime, now)
	if err != nil {
		return nil, err
	}

	interval := time.Duration(s.IntervalHours) * time.Hour

	out := make([]reminders.DoseReminder, 0, s.DurationDays*(24/s.IntervalHours+1))
	for d := 0; d < s.DurationDays; d++ {
		day := start.AddDate(0, 0, d)

		cur := day
		for n := 0; n < maxDosesPerDay; n++ {
			if !sameDate(cur, day) {
				break
			}
			out = append(out, reminders.DoseReminder{
				ScheduleID:    s.ID,
				MedicineID:    s.MedicineID,
				ScheduledTime: cur,
				CreatedAt:     now,
			})
			cur = cur.Add(interval)
		}
	}

	return out, nil
}

// parseStart resuelve el instante de la primera dosis: "HH:MM" ancla en la
// fecha de now (hora local); RFC3339 usa la fecha y hora del timestamp.
// Segundos y milis siempre a cero.
func parseStart(raw string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(timeOfDayLayout, raw); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location()), nil
	}
	return time.Time{}, fmt.Errorf("%w: start_time %q must be HH:MM or RFC3339", ErrInvalidSchedule, raw)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
