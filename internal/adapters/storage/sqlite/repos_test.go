package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"med-dose-tracker/internal/adapters/storage/sqlite"
	"med-dose-tracker/internal/adapters/storage/storagetest"
)

// La misma suite de contrato que memory, pero contra sqlite real en memoria.
// Cada subtest abre su propia base: con una sola conexión el ":memory:" vive
// lo que vive el *sql.DB.
func TestRepos_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Repos {
		db, err := sqlite.Open("file::memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		return storagetest.Repos{
			Medicines: sqlite.NewMedicinesRepo(db),
			Schedules: sqlite.NewSchedulesRepo(db),
			Reminders: sqlite.NewRemindersRepo(db),
		}
	})
}
