package postgres

import (
	"context"
	"database/sql"

	"med-dose-tracker/internal/domain/medicines"
)

type MedicinesRepo struct {
	db *sql.DB
}

func NewMedicinesRepo(db *sql.DB) *MedicinesRepo {
	return &MedicinesRepo{db: db}
}

func (r *MedicinesRepo) Create(ctx context.Context, m medicines.Medicine) (medicines.Medicine, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medicines (name, dosage, notes, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		m.Name,
		m.Dosage,
		m.Notes,
		m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return medicines.Medicine{}, err
	}
	return m, nil
}

func (r *MedicinesRepo) GetByID(ctx context.Context, id int64) (medicines.Medicine, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, dosage, notes, created_at
		FROM medicines
		WHERE id = $1
	`, id)

	var m medicines.Medicine
	if err := row.Scan(&m.ID, &m.Name, &m.Dosage, &m.Notes, &m.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return medicines.Medicine{}, medicines.ErrNotFound
		}
		return medicines.Medicine{}, err
	}
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
		if err := rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicinesRepo) Delete(ctx context.Context, id int64) error {
	// idempotente: 0 filas afectadas no es error
	_, err := r.db.ExecContext(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	return err
}
