package dispatch

import (
	"context"
	"time"

	"med-dose-tracker/internal/domain/medicines"
	"med-dose-tracker/internal/domain/reminders"
	"med-dose-tracker/internal/platform/logger"
	"med-dose-tracker/internal/ports/notify"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Dispatcher entrega las dosis vencidas al scheduler de notificaciones
// externo. Corre un job periódico (gocron); cada dosis se entrega una sola
// vez por proceso (set en memoria de ids ya despachados).
type Dispatcher struct {
	remSvc    *reminders.Service
	medsSvc   *medicines.Service
	scheduler notify.Scheduler
	log       logger.Logger

	interval time.Duration

	cron       gocron.Scheduler
	dispatched map[int64]struct{}
}

func New(remSvc *reminders.Service, medsSvc *medicines.Service, scheduler notify.Scheduler, log logger.Logger, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Dispatcher{
		remSvc:     remSvc,
		medsSvc:    medsSvc,
		scheduler:  scheduler,
		log:        log,
		interval:   interval,
		dispatched: make(map[int64]struct{}),
	}
}

func (d *Dispatcher) Start() error {
	if d.scheduler == nil {
		d.log.Info("dispatcher disabled: no notification scheduler configured", nil)
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	if _, err := s.NewJob(
		gocron.DurationJob(d.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), d.interval)
			defer cancel()
			d.run(ctx)
		}),
	); err != nil {
		return err
	}

	s.Start()
	d.cron = s
	d.log.Info("dispatcher started", map[string]any{"interval": d.interval.String()})
	return nil
}

func (d *Dispatcher) Stop() {
	if d.cron != nil {
		_ = d.cron.Shutdown()
	}
}

// run es una pasada: consulta vencidas + pendientes y entrega las nuevas.
// El job corre en serie (gocron no solapa tareas de un mismo job por
// default), así que dispatched no necesita lock.
func (d *Dispatcher) run(ctx context.Context) {
	due, err := d.remSvc.DueForHandoff(ctx)
	if err != nil {
		d.log.Error("dispatcher: list due reminders", map[string]any{"err": err.Error()})
		return
	}

	for _, rem := range due {
		if _, done := d.dispatched[rem.ID]; done {
			continue
		}

		med, err := d.medsSvc.GetByID(ctx, rem.MedicineID)
		if err != nil {
			d.log.Error("dispatcher: load medicine", map[string]any{
				"reminder_id": rem.ID,
				"medicine_id": rem.MedicineID,
				"err":         err.Error(),
			})
			continue
		}

		// id de correlación para seguir el handoff en los logs del receptor
		dispatchID := uuid.NewString()

		err = d.scheduler.Schedule(ctx, notify.DoseNotification{
			ReminderID:    rem.ID,
			MedicineName:  med.Name,
			Dosage:        med.Dosage,
			ScheduledTime: rem.ScheduledTime,
		})
		if err != nil {
			// sin marcar: se reintenta en la próxima pasada
			d.log.Error("dispatcher: handoff failed", map[string]any{
				"dispatch_id": dispatchID,
				"reminder_id": rem.ID,
				"err":         err.Error(),
			})
			continue
		}

		d.dispatched[rem.ID] = struct{}{}
		d.log.Info("dose handed off", map[string]any{
			"dispatch_id":    dispatchID,
			"reminder_id":    rem.ID,
			"medicine":       med.Name,
			"scheduled_time": rem.ScheduledTime.Format(time.RFC3339),
		})
	}
}
