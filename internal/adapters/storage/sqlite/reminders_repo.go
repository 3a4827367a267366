package sqlite

import (
	"context"
	"database/sql"
	"time"

	"med-dose-tracker/internal/domain/reminders"
)

const reminderColumns = `
	id, schedule_id, medicine_id,
	scheduled_time, taken_at,
	is_taken, is_skipped,
	created_at
`

type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Create(ctx context.Context, d reminders.DoseReminder) (reminders.DoseReminder, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO dose_reminders (
			schedule_id, medicine_id,
			scheduled_time, taken_at,
			is_taken, is_skipped,
			created_at
		) VALUES (?,?,?,?,?,?,?)
	`,
		d.ScheduleID,
		d.MedicineID,
		d.ScheduledTime.UnixNano(),
		toNullNanos(d.TakenAt),
		d.IsTaken,
		d.IsSkipped,
		d.CreatedAt.UnixNano(),
	)
	if err != nil {
		return reminders.DoseReminder{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return reminders.DoseReminder{}, err
	}
	d.ID = id
	return d, nil
}

// CreateBatch inserta dentro de una tx: o entran todas las dosis o ninguna.
func (r *RemindersRepo) CreateBatch(ctx context.Context, ds []reminders.DoseReminder) ([]reminders.DoseReminder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out := make([]reminders.DoseReminder, 0, len(ds))
	for _, d := range ds {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO dose_reminders (
				schedule_id, medicine_id,
				scheduled_time, taken_at,
				is_taken, is_skipped,
				created_at
			) VALUES (?,?,?,?,?,?,?)
		`,
			d.ScheduleID,
			d.MedicineID,
			d.ScheduledTime.UnixNano(),
			toNullNanos(d.TakenAt),
			d.IsTaken,
			d.IsSkipped,
			d.CreatedAt.UnixNano(),
		)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		d.ID = id
		out = append(out, d)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemindersRepo) GetByID(ctx context.Context, id int64) (reminders.DoseReminder, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		WHERE id = ?
	`, id)

	d, err := scanReminder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return reminders.DoseReminder{}, reminders.ErrNotFound
		}
		return reminders.DoseReminder{}, err
	}
	return d, nil
}

func (r *RemindersRepo) ListBySchedule(ctx context.Context, scheduleID int64) ([]reminders.DoseReminder, error) {
	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		WHERE schedule_id = ?
		ORDER BY scheduled_time ASC, id ASC
	`, scheduleID)
}

func (r *RemindersRepo) ListByMedicine(ctx context.Context, medicineID int64) ([]reminders.DoseReminder, error) {
	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		WHERE medicine_id = ?
		ORDER BY scheduled_time ASC, id ASC
	`, medicineID)
}

func (r *RemindersRepo) ListPending(ctx context.Context) ([]reminders.DoseReminder, error) {
	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		WHERE is_taken = 0 AND is_skipped = 0
		ORDER BY scheduled_time ASC, id ASC
	`)
}

// ListOverdue compara contra el now recibido, nunca contra un campo
// almacenado.
func (r *RemindersRepo) ListOverdue(ctx context.Context, now time.Time) ([]reminders.DoseReminder, error) {
	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		WHERE is_taken = 0 AND is_skipped = 0 AND scheduled_time < ?
		ORDER BY scheduled_time ASC, id ASC
	`, now.UnixNano())
}

func (r *RemindersRepo) ListTaken(ctx context.Context) ([]reminders.DoseReminder, error) {
	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		WHERE is_taken = 1
		ORDER BY taken_at ASC, id ASC
	`)
}

func (r *RemindersRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]reminders.DoseReminder, error) {
	// Semiabierto: from inclusivo, to exclusivo.
	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		WHERE scheduled_time >= ? AND scheduled_time < ?
		ORDER BY scheduled_time ASC, id ASC
	`, from.UnixNano(), to.UnixNano())
}

func (r *RemindersRepo) ListAll(ctx context.Context) ([]reminders.DoseReminder, error) {
	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM dose_reminders
		ORDER BY scheduled_time ASC, id ASC
	`)
}

func (r *RemindersRepo) Update(ctx context.Context, d reminders.DoseReminder) error {
	if d.ID == 0 {
		return reminders.ErrMissingID
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE dose_reminders
		SET scheduled_time = ?,
		    taken_at = ?,
		    is_taken = ?,
		    is_skipped = ?
		WHERE id = ?
	`,
		d.ScheduledTime.UnixNano(),
		toNullNanos(d.TakenAt),
		d.IsTaken,
		d.IsSkipped,
		d.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return reminders.ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dose_reminders WHERE id = ?`, id)
	return err
}

func (r *RemindersRepo) DeleteBySchedule(ctx context.Context, scheduleID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dose_reminders WHERE schedule_id = ?`, scheduleID)
	return err
}

func (r *RemindersRepo) DeleteByMedicine(ctx context.Context, medicineID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dose_reminders WHERE medicine_id = ?`, medicineID)
	return err
}

func (r *RemindersRepo) query(ctx context.Context, q string, args ...any) ([]reminders.DoseReminder, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.DoseReminder, 0)
	for rows.Next() {
		d, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanReminder(row rowScanner) (reminders.DoseReminder, error) {
	var d reminders.DoseReminder
	var scheduledAt, createdAt int64
	var takenAt sql.NullInt64
	err := row.Scan(
		&d.ID,
		&d.ScheduleID,
		&d.MedicineID,
		&scheduledAt,
		&takenAt,
		&d.IsTaken,
		&d.IsSkipped,
		&createdAt,
	)
	if err != nil {
		return reminders.DoseReminder{}, err
	}
	d.ScheduledTime = fromNanos(scheduledAt)
	d.CreatedAt = fromNanos(createdAt)
	if takenAt.Valid {
		t := fromNanos(takenAt.Int64)
		d.TakenAt = &t
	}
	return d, nil
}

func toNullNanos(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}
