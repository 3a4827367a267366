// Package storagetest contiene la suite de contrato que toda implementación
// de los repositorios debe pasar. Cada backend la invoca desde su propio
// paquete con una factory que entrega repos limpios por subtest.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"med-dose-tracker/internal/domain/medicines"
	"med-dose-tracker/internal/domain/reminders"
	"med-dose-tracker/internal/domain/schedules"
)

type Repos struct {
	Medicines medicines.Repository
	Schedules schedules.Repository
	Reminders reminders.Repository
}

// Factory entrega un backend nuevo y vacío. Se llama una vez por subtest.
type Factory func(t *testing.T) Repos

var baseTime = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

// seed crea medicine + schedule para que los reminders tengan FKs válidas.
func seed(t *testing.T, r Repos) (medicines.Medicine, schedules.Schedule) {
	t.Helper()
	ctx := context.Background()

	med, err := r.Medicines.Create(ctx, medicines.Medicine{
		Name:      "Amoxicilina",
		Dosage:    "500mg",
		CreatedAt: baseTime,
	})
	require.NoError(t, err)

	sched, err := r.Schedules.Create(ctx, schedules.Schedule{
		MedicineID:    med.ID,
		IntervalHours: 8,
		DurationDays:  2,
		StartTime:     "08:00",
		IsActive:      true,
		CreatedAt:     baseTime,
	})
	require.NoError(t, err)

	return med, sched
}

func seedReminder(med medicines.Medicine, sched schedules.Schedule, at time.Time) reminders.DoseReminder {
	return reminders.DoseReminder{
		ScheduleID:    sched.ID,
		MedicineID:    med.ID,
		ScheduledTime: at,
		CreatedAt:     baseTime,
	}
}

// Run ejecuta la suite completa contra la factory dada.
func Run(t *testing.T, newRepos Factory) {
	t.Run("medicines", func(t *testing.T) { runMedicines(t, newRepos) })
	t.Run("schedules", func(t *testing.T) { runSchedules(t, newRepos) })
	t.Run("reminders", func(t *testing.T) { runReminders(t, newRepos) })
}

func runMedicines(t *testing.T, newRepos Factory) {
	ctx := context.Background()

	t.Run("create asigna identidad y round trip", func(t *testing.T) {
		r := newRepos(t)

		saved, err := r.Medicines.Create(ctx, medicines.Medicine{
			Name:      "Ibuprofeno",
			Dosage:    "400mg",
			Notes:     "con comida",
			CreatedAt: baseTime,
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		got, err := r.Medicines.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, saved.ID, got.ID)
		require.Equal(t, "Ibuprofeno", got.Name)
		require.Equal(t, "400mg", got.Dosage)
		require.Equal(t, "con comida", got.Notes)
		require.True(t, got.CreatedAt.Equal(baseTime))
	})

	t.Run("get inexistente es ErrNotFound", func(t *testing.T) {
		r := newRepos(t)

		_, err := r.Medicines.GetByID(ctx, 99)
		require.ErrorIs(t, err, medicines.ErrNotFound)
	})

	t.Run("list ordena por id", func(t *testing.T) {
		r := newRepos(t)

		for _, name := range []string{"Zinc", "Aspirina", "Magnesio"} {
			_, err := r.Medicines.Create(ctx, medicines.Medicine{Name: name, CreatedAt: baseTime})
			require.NoError(t, err)
		}

		list, err := r.Medicines.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i := 1; i < len(list); i++ {
			require.Less(t, list[i-1].ID, list[i].ID)
		}
	})

	t.Run("delete es idempotente", func(t *testing.T) {
		r := newRepos(t)

		saved, err := r.Medicines.Create(ctx, medicines.Medicine{Name: "Temp", CreatedAt: baseTime})
		require.NoError(t, err)

		require.NoError(t, r.Medicines.Delete(ctx, saved.ID))
		require.NoError(t, r.Medicines.Delete(ctx, saved.ID))

		_, err = r.Medicines.GetByID(ctx, saved.ID)
		require.ErrorIs(t, err, medicines.ErrNotFound)
	})
}

func runSchedules(t *testing.T, newRepos Factory) {
	ctx := context.Background()

	t.Run("create y round trip", func(t *testing.T) {
		r := newRepos(t)
		_, sched := seed(t, r)

		got, err := r.Schedules.GetByID(ctx, sched.ID)
		require.NoError(t, err)
		require.Equal(t, sched.MedicineID, got.MedicineID)
		require.Equal(t, 8, got.IntervalHours)
		require.Equal(t, 2, got.DurationDays)
		require.Equal(t, "08:00", got.StartTime)
		require.True(t, got.IsActive)
	})

	t.Run("get inexistente es ErrNotFound", func(t *testing.T) {
		r := newRepos(t)

		_, err := r.Schedules.GetByID(ctx, 42)
		require.ErrorIs(t, err, schedules.ErrNotFound)
	})

	t.Run("update exige identidad", func(t *testing.T) {
		r := newRepos(t)

		err := r.Schedules.Update(ctx, schedules.Schedule{IntervalHours: 8, DurationDays: 1})
		require.ErrorIs(t, err, schedules.ErrMissingID)
	})

	t.Run("update inexistente es ErrNotFound", func(t *testing.T) {
		r := newRepos(t)

		err := r.Schedules.Update(ctx, schedules.Schedule{ID: 7, IntervalHours: 8, DurationDays: 1})
		require.ErrorIs(t, err, schedules.ErrNotFound)
	})

	t.Run("update persiste cambios", func(t *testing.T) {
		r := newRepos(t)
		_, sched := seed(t, r)

		sched.IsActive = false
		require.NoError(t, r.Schedules.Update(ctx, sched))

		got, err := r.Schedules.GetByID(ctx, sched.ID)
		require.NoError(t, err)
		require.False(t, got.IsActive)
	})

	t.Run("list por medicine", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		list, err := r.Schedules.ListByMedicine(ctx, med.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, sched.ID, list[0].ID)

		empty, err := r.Schedules.ListByMedicine(ctx, med.ID+100)
		require.NoError(t, err)
		require.Empty(t, empty)
	})

	t.Run("delete por medicine", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		require.NoError(t, r.Schedules.DeleteByMedicine(ctx, med.ID))

		_, err := r.Schedules.GetByID(ctx, sched.ID)
		require.ErrorIs(t, err, schedules.ErrNotFound)
	})
}

func runReminders(t *testing.T, newRepos Factory) {
	ctx := context.Background()

	t.Run("create batch asigna identidades y round trip", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		batch := []reminders.DoseReminder{
			seedReminder(med, sched, baseTime),
			seedReminder(med, sched, baseTime.Add(8*time.Hour)),
			seedReminder(med, sched, baseTime.Add(16*time.Hour)),
		}
		saved, err := r.Reminders.CreateBatch(ctx, batch)
		require.NoError(t, err)
		require.Len(t, saved, 3)
		for _, d := range saved {
			require.NotZero(t, d.ID)
		}

		got, err := r.Reminders.GetByID(ctx, saved[1].ID)
		require.NoError(t, err)
		require.Equal(t, sched.ID, got.ScheduleID)
		require.Equal(t, med.ID, got.MedicineID)
		require.True(t, got.ScheduledTime.Equal(baseTime.Add(8*time.Hour)))
		require.False(t, got.IsTaken)
		require.False(t, got.IsSkipped)
		require.Nil(t, got.TakenAt)
	})

	t.Run("create batch vacío no falla", func(t *testing.T) {
		r := newRepos(t)

		saved, err := r.Reminders.CreateBatch(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, saved)
	})

	t.Run("get inexistente es ErrNotFound", func(t *testing.T) {
		r := newRepos(t)

		_, err := r.Reminders.GetByID(ctx, 13)
		require.ErrorIs(t, err, reminders.ErrNotFound)
	})

	t.Run("list por schedule ordena por hora y desempata por id", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		// insertados en desorden, dos con la misma hora
		_, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime.Add(16*time.Hour)))
		require.NoError(t, err)
		a, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime))
		require.NoError(t, err)
		b, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime))
		require.NoError(t, err)

		list, err := r.Reminders.ListBySchedule(ctx, sched.ID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, a.ID, list[0].ID)
		require.Equal(t, b.ID, list[1].ID)
		for i := 1; i < len(list); i++ {
			require.False(t, list[i].ScheduledTime.Before(list[i-1].ScheduledTime))
		}
	})

	t.Run("pending excluye tomados y saltados", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		pending, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime))
		require.NoError(t, err)

		taken := seedReminder(med, sched, baseTime.Add(time.Hour))
		takenAt := baseTime.Add(90 * time.Minute)
		taken.IsTaken = true
		taken.TakenAt = &takenAt
		_, err = r.Reminders.Create(ctx, taken)
		require.NoError(t, err)

		skipped := seedReminder(med, sched, baseTime.Add(2*time.Hour))
		skipped.IsSkipped = true
		_, err = r.Reminders.Create(ctx, skipped)
		require.NoError(t, err)

		list, err := r.Reminders.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, pending.ID, list[0].ID)
	})

	t.Run("overdue es subconjunto de pending con hora vencida", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		past, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime.Add(-2*time.Hour)))
		require.NoError(t, err)
		_, err = r.Reminders.Create(ctx, seedReminder(med, sched, baseTime.Add(2*time.Hour)))
		require.NoError(t, err)

		// tomado en el pasado: ya no cuenta como vencido
		old := seedReminder(med, sched, baseTime.Add(-4*time.Hour))
		takenAt := baseTime.Add(-3 * time.Hour)
		old.IsTaken = true
		old.TakenAt = &takenAt
		_, err = r.Reminders.Create(ctx, old)
		require.NoError(t, err)

		list, err := r.Reminders.ListOverdue(ctx, baseTime)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, past.ID, list[0].ID)
	})

	t.Run("overdue excluye la hora exacta", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		_, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime))
		require.NoError(t, err)

		list, err := r.Reminders.ListOverdue(ctx, baseTime)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("taken ordena por hora de toma", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		// tomado tarde pero programado temprano
		first := seedReminder(med, sched, baseTime)
		firstAt := baseTime.Add(5 * time.Hour)
		first.IsTaken = true
		first.TakenAt = &firstAt
		savedFirst, err := r.Reminders.Create(ctx, first)
		require.NoError(t, err)

		second := seedReminder(med, sched, baseTime.Add(2*time.Hour))
		secondAt := baseTime.Add(2 * time.Hour)
		second.IsTaken = true
		second.TakenAt = &secondAt
		savedSecond, err := r.Reminders.Create(ctx, second)
		require.NoError(t, err)

		list, err := r.Reminders.ListTaken(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, savedSecond.ID, list[0].ID)
		require.Equal(t, savedFirst.ID, list[1].ID)
	})

	t.Run("rango de fechas es semiabierto", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		from := baseTime
		to := baseTime.Add(24 * time.Hour)

		_, err := r.Reminders.Create(ctx, seedReminder(med, sched, from.Add(-time.Nanosecond)))
		require.NoError(t, err)
		atFrom, err := r.Reminders.Create(ctx, seedReminder(med, sched, from))
		require.NoError(t, err)
		inside, err := r.Reminders.Create(ctx, seedReminder(med, sched, from.Add(12*time.Hour)))
		require.NoError(t, err)
		_, err = r.Reminders.Create(ctx, seedReminder(med, sched, to))
		require.NoError(t, err)

		list, err := r.Reminders.ListByDateRange(ctx, from, to)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, atFrom.ID, list[0].ID)
		require.Equal(t, inside.ID, list[1].ID)
	})

	t.Run("update persiste transición y exige identidad", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		saved, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime))
		require.NoError(t, err)

		takenAt := baseTime.Add(time.Hour)
		saved.IsTaken = true
		saved.TakenAt = &takenAt
		require.NoError(t, r.Reminders.Update(ctx, saved))

		got, err := r.Reminders.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, got.IsTaken)
		require.NotNil(t, got.TakenAt)
		require.True(t, got.TakenAt.Equal(takenAt))

		err = r.Reminders.Update(ctx, reminders.DoseReminder{ScheduleID: sched.ID, MedicineID: med.ID})
		require.ErrorIs(t, err, reminders.ErrMissingID)

		err = r.Reminders.Update(ctx, reminders.DoseReminder{ID: saved.ID + 100, ScheduleID: sched.ID, MedicineID: med.ID})
		require.ErrorIs(t, err, reminders.ErrNotFound)
	})

	t.Run("delete es idempotente", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		saved, err := r.Reminders.Create(ctx, seedReminder(med, sched, baseTime))
		require.NoError(t, err)

		require.NoError(t, r.Reminders.Delete(ctx, saved.ID))
		require.NoError(t, r.Reminders.Delete(ctx, saved.ID))

		_, err = r.Reminders.GetByID(ctx, saved.ID)
		require.ErrorIs(t, err, reminders.ErrNotFound)
	})

	t.Run("delete por schedule y por medicine", func(t *testing.T) {
		r := newRepos(t)
		med, sched := seed(t, r)

		other, err := r.Schedules.Create(ctx, schedules.Schedule{
			MedicineID:    med.ID,
			IntervalHours: 12,
			DurationDays:  1,
			StartTime:     "09:00",
			IsActive:      true,
			CreatedAt:     baseTime,
		})
		require.NoError(t, err)

		_, err = r.Reminders.Create(ctx, seedReminder(med, sched, baseTime))
		require.NoError(t, err)
		kept, err := r.Reminders.Create(ctx, seedReminder(med, other, baseTime))
		require.NoError(t, err)

		require.NoError(t, r.Reminders.DeleteBySchedule(ctx, sched.ID))

		list, err := r.Reminders.ListByMedicine(ctx, med.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, kept.ID, list[0].ID)

		require.NoError(t, r.Reminders.DeleteByMedicine(ctx, med.ID))

		list, err = r.Reminders.ListByMedicine(ctx, med.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
