package memory_test

import (
	"testing"

	"med-dose-tracker/internal/adapters/storage/memory"
	"med-dose-tracker/internal/adapters/storage/storagetest"
)

func TestRepos_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Repos {
		return storagetest.Repos{
			Medicines: memory.NewMedicinesRepo(),
			Schedules: memory.NewSchedulesRepo(),
			Reminders: memory.NewRemindersRepo(),
		}
	})
}
