package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-dose-tracker/internal/adapters/storage/memory"
	"med-dose-tracker/internal/domain/medicines"
	"med-dose-tracker/internal/domain/reminders"
	"med-dose-tracker/internal/platform/logger"
	"med-dose-tracker/internal/ports/notify"
)

type fakeScheduler struct {
	calls []notify.DoseNotification
	fail  error
}

func (f *fakeScheduler) Schedule(ctx context.Context, n notify.DoseNotification) error {
	if f.fail != nil {
		return f.fail
	}
	f.calls = append(f.calls, n)
	return nil
}

func quietLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

// seedOverdue deja un medicamento y un reminder vencido en los repos.
func seedOverdue(t *testing.T, medsSvc *medicines.Service, remRepo reminders.Repository, at time.Time) reminders.DoseReminder {
	t.Helper()
	ctx := context.Background()

	med, err := medsSvc.Create(ctx, medicines.CreateInput{Name: "Amoxicilina", Dosage: "500mg"})
	if err != nil {
		t.Fatalf("create medicine: %v", err)
	}

	rem, err := remRepo.Create(ctx, reminders.DoseReminder{
		ScheduleID:    1,
		MedicineID:    med.ID,
		ScheduledTime: at,
		CreatedAt:     at,
	})
	if err != nil {
		t.Fatalf("create reminder: %v", err)
	}
	return rem
}

func TestRun_HandsOffOverdueOnce(t *testing.T) {
	remRepo := memory.NewRemindersRepo()
	remSvc := reminders.NewService(remRepo)
	medsSvc := medicines.NewService(memory.NewMedicinesRepo(), nil)
	sched := &fakeScheduler{}

	past := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	rem := seedOverdue(t, medsSvc, remRepo, past)

	d := New(remSvc, medsSvc, sched, quietLogger(), time.Minute)

	d.run(context.Background())
	if len(sched.calls) != 1 {
		t.Fatalf("expected 1 handoff, got %d", len(sched.calls))
	}
	got := sched.calls[0]
	if got.ReminderID != rem.ID {
		t.Fatalf("expected reminder %d, got %d", rem.ID, got.ReminderID)
	}
	if got.MedicineName != "Amoxicilina" || got.Dosage != "500mg" {
		t.Fatalf("notification missing medicine data: %+v", got)
	}
	if !got.ScheduledTime.Equal(past) {
		t.Fatalf("expected scheduled time %v, got %v", past, got.ScheduledTime)
	}

	// segunda pasada: la misma dosis no se vuelve a entregar
	d.run(context.Background())
	if len(sched.calls) != 1 {
		t.Fatalf("expected dedup on second pass, got %d calls", len(sched.calls))
	}
}

func TestRun_RetriesAfterHandoffFailure(t *testing.T) {
	remRepo := memory.NewRemindersRepo()
	remSvc := reminders.NewService(remRepo)
	medsSvc := medicines.NewService(memory.NewMedicinesRepo(), nil)
	sched := &fakeScheduler{fail: errors.New("webhook down")}

	seedOverdue(t, medsSvc, remRepo, time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC))

	d := New(remSvc, medsSvc, sched, quietLogger(), time.Minute)

	// primera pasada falla: no debe quedar marcada como entregada
	d.run(context.Background())
	if len(sched.calls) != 0 {
		t.Fatalf("expected no successful handoff, got %d", len(sched.calls))
	}

	sched.fail = nil
	d.run(context.Background())
	if len(sched.calls) != 1 {
		t.Fatalf("expected retry to succeed, got %d calls", len(sched.calls))
	}
}

func TestRun_SkipsTakenDoses(t *testing.T) {
	remRepo := memory.NewRemindersRepo()
	remSvc := reminders.NewService(remRepo)
	medsSvc := medicines.NewService(memory.NewMedicinesRepo(), nil)
	sched := &fakeScheduler{}

	rem := seedOverdue(t, medsSvc, remRepo, time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC))
	if _, err := remSvc.MarkTaken(context.Background(), rem.ID); err != nil {
		t.Fatalf("mark taken: %v", err)
	}

	d := New(remSvc, medsSvc, sched, quietLogger(), time.Minute)

	d.run(context.Background())
	if len(sched.calls) != 0 {
		t.Fatalf("taken dose must not be handed off, got %d calls", len(sched.calls))
	}
}
