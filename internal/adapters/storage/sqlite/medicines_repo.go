package sqlite

import (
	"context"
	"database/sql"
	"time"

	"med-dose-tracker/internal/domain/medicines"
)

type MedicinesRepo struct {
	db *sql.DB
}

func NewMedicinesRepo(db *sql.DB) *MedicinesRepo {
	return &MedicinesRepo{db: db}
}

func (r *MedicinesRepo) Create(ctx context.Context, m medicines.Medicine) (medicines.Medicine, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO medicines (name, dosage, notes, created_at)
		VALUES (?,?,?,?)
	`,
		m.Name,
		m.Dosage,
		m.Notes,
		m.CreatedAt.UnixNano(),
	)
	if err != nil {
		return medicines.Medicine{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return medicines.Medicine{}, err
	}
	m.ID = id
	return m, nil
}

func (r *MedicinesRepo) GetByID(ctx context.Context, id int64) (medicines.Medicine, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, dosage, notes, created_at
		FROM medicines
		WHERE id = ?
	`, id)

	var m medicines.Medicine
	var createdAt int64
	if err := row.Scan(&m.ID, &m.Name, &m.Dosage, &m.Notes, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return medicines.Medicine{}, medicines.ErrNotFound
		}
		return medicines.Medicine{}, err
	}
	m.CreatedAt = fromNanos(createdAt)
	return m, nil
}

func (r *MedicinesRepo) List(ctx context.Context) ([]medicines.Medicine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, dosage, notes, created_at
		FROM medicines
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicines.Medicine, 0)
	for rows.Next() {
		var m medicines.Medicine
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Notes, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = fromNanos(createdAt)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicinesRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM medicines WHERE id = ?`, id)
	return err
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n)
}
