package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"med-dose-tracker/internal/domain/reminders"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *RemindersRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewRemindersRepo(db)
}

var (
	mockScheduled = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	mockCreated   = time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
)

func reminderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "schedule_id", "medicine_id",
		"scheduled_time", "taken_at",
		"is_taken", "is_skipped",
		"created_at",
	})
}

func TestCreate_ReturnsAssignedID(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO dose_reminders`).
		WithArgs(int64(4), int64(2), mockScheduled, sql.NullTime{}, false, false, mockCreated).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	saved, err := repo.Create(context.Background(), reminders.DoseReminder{
		ScheduleID:    4,
		MedicineID:    2,
		ScheduledTime: mockScheduled,
		CreatedAt:     mockCreated,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_CommitsAllInserts(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO dose_reminders`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`INSERT INTO dose_reminders`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectCommit()

	batch := []reminders.DoseReminder{
		{ScheduleID: 4, MedicineID: 2, ScheduledTime: mockScheduled, CreatedAt: mockCreated},
		{ScheduleID: 4, MedicineID: 2, ScheduledTime: mockScheduled.Add(8 * time.Hour), CreatedAt: mockCreated},
	}
	saved, err := repo.CreateBatch(context.Background(), batch)

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(1), saved[0].ID)
	assert.Equal(t, int64(2), saved[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_RollsBackOnFailure(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO dose_reminders`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`INSERT INTO dose_reminders`).
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	batch := []reminders.DoseReminder{
		{ScheduleID: 4, MedicineID: 2, ScheduledTime: mockScheduled, CreatedAt: mockCreated},
		{ScheduleID: 4, MedicineID: 2, ScheduledTime: mockScheduled.Add(8 * time.Hour), CreatedAt: mockCreated},
	}
	saved, err := repo.CreateBatch(context.Background(), batch)

	require.Error(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_ScansRow(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	takenAt := mockScheduled.Add(30 * time.Minute)
	mock.ExpectQuery(`SELECT (.+) FROM dose_reminders WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(reminderRows().
			AddRow(int64(7), int64(4), int64(2), mockScheduled, takenAt, true, false, mockCreated))

	got, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, int64(4), got.ScheduleID)
	assert.True(t, got.IsTaken)
	require.NotNil(t, got.TakenAt)
	assert.True(t, got.TakenAt.Equal(takenAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NoRows_IsNotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM dose_reminders WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(reminderRows())

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, reminders.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOverdue_FiltersAndOrders(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := mockScheduled.Add(4 * time.Hour)
	mock.ExpectQuery(`is_taken = FALSE AND is_skipped = FALSE AND scheduled_time < \$1(.+)ORDER BY scheduled_time ASC, id ASC`).
		WithArgs(now).
		WillReturnRows(reminderRows().
			AddRow(int64(1), int64(4), int64(2), mockScheduled, nil, false, false, mockCreated).
			AddRow(int64(2), int64(4), int64(2), mockScheduled.Add(time.Hour), nil, false, false, mockCreated))

	list, err := repo.ListOverdue(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].TakenAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDateRange_HalfOpenArgs(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	from := mockScheduled
	to := mockScheduled.Add(24 * time.Hour)
	mock.ExpectQuery(`scheduled_time >= \$1 AND scheduled_time < \$2`).
		WithArgs(from, to).
		WillReturnRows(reminderRows())

	list, err := repo.ListByDateRange(context.Background(), from, to)

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_WithoutID_DoesNotTouchDB(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	err := repo.Update(context.Background(), reminders.DoseReminder{
		ScheduleID:    4,
		MedicineID:    2,
		ScheduledTime: mockScheduled,
	})

	assert.ErrorIs(t, err, reminders.ErrMissingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ZeroRows_IsNotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE dose_reminders`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), reminders.DoseReminder{
		ID:            7,
		ScheduleID:    4,
		MedicineID:    2,
		ScheduledTime: mockScheduled,
	})

	assert.ErrorIs(t, err, reminders.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBySchedule_Succeeds(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM dose_reminders WHERE schedule_id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.DeleteBySchedule(context.Background(), 4)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
