package sqlite

import (
	"context"
	"database/sql"

	"med-dose-tracker/internal/domain/schedules"
)

type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

func (r *SchedulesRepo) Create(ctx context.Context, s schedules.Schedule) (schedules.Schedule, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO schedules (
			medicine_id, interval_hours, duration_days,
			start_time, notes, is_active, created_at
		) VALUES (?,?,?,?,?,?,?)
	`,
		s.MedicineID,
		s.IntervalHours,
		s.DurationDays,
		s.StartTime,
		s.Notes,
		s.IsActive,
		s.CreatedAt.UnixNano(),
	)
	if err != nil {
		return schedules.Schedule{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return schedules.Schedule{}, err
	}
	s.ID = id
	return s, nil
}

func (r *SchedulesRepo) GetByID(ctx context.Context, id int64) (schedules.Schedule, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, medicine_id, interval_hours, duration_days,
		       start_time, notes, is_active, created_at
		FROM schedules
		WHERE id = ?
	`, id)

	s, err := scanSchedule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return schedules.Schedule{}, schedules.ErrNotFound
		}
		return schedules.Schedule{}, err
	}
	return s, nil
}

func (r *SchedulesRepo) ListByMedicine(ctx context.Context, medicineID int64) ([]schedules.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, medicine_id, interval_hours, duration_days,
		       start_time, notes, is_active, created_at
		FROM schedules
		WHERE medicine_id = ?
		ORDER BY created_at ASC, id ASC
	`, medicineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedules.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SchedulesRepo) Update(ctx context.Context, s schedules.Schedule) error {
	if s.ID == 0 {
		return schedules.ErrMissingID
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE schedules
		SET interval_hours = ?,
		    duration_days = ?,
		    start_time = ?,
		    notes = ?,
		    is_active = ?
		WHERE id = ?
	`,
		s.IntervalHours,
		s.DurationDays,
		s.StartTime,
		s.Notes,
		s.IsActive,
		s.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return schedules.ErrNotFound
	}
	return nil
}

func (r *SchedulesRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	return err
}

func (r *SchedulesRepo) DeleteByMedicine(ctx context.Context, medicineID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE medicine_id = ?`, medicineID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (schedules.Schedule, error) {
	var s schedules.Schedule
	var createdAt int64
	err := row.Scan(
		&s.ID,
		&s.MedicineID,
		&s.IntervalHours,
		&s.DurationDays,
		&s.StartTime,
		&s.Notes,
		&s.IsActive,
		&createdAt,
	)
	if err != nil {
		return schedules.Schedule{}, err
	}
	s.CreatedAt = fromNanos(createdAt)
	return s, nil
}
