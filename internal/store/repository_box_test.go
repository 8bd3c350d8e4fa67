package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoxRepo(t *testing.T) (*boxRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	return &boxRepository{db: newDB(db, l), logger: l}, mock, db
}

var boxRowColumns = []string{"id", "name", "placement", "size", "slots", "version", "created_at"}

var occupiedSince = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestCreateBox_Success(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	box := models.Box{BoxID: "b1", Name: "hall", Placement: "floor 1", Size: 2, Slots: models.NewSlots(2)}

	mock.ExpectQuery("INSERT INTO boxes").
		WithArgs("b1", "hall", "floor 1", 2, "[null,null]").
		WillReturnRows(sqlmock.NewRows(boxRowColumns).
			AddRow("b1", "hall", "floor 1", 2, []byte("[null,null]"), int64(1), time.Now()))

	created, err := repo.CreateBox(context.Background(), box)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	require.Len(t, created.Slots, 2)
	assert.Equal(t, models.SlotFree, created.Slots[0].State)
}

func TestFindBoxByID_DecodesSlotStates(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	slots := `[null,["u1","2026-03-01T10:00:00Z"],["u2"]]`
	mock.ExpectQuery("SELECT (.+) FROM boxes WHERE id = \\$1").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(boxRowColumns).
			AddRow("b1", "hall", "floor 1", 3, []byte(slots), int64(7), time.Now()))

	box, err := repo.FindBoxByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), box.Version)
	require.Len(t, box.Slots, 3)
	assert.Equal(t, models.SlotFree, box.Slots[0].State)
	assert.Equal(t, models.SlotOccupied, box.Slots[1].State)
	assert.Equal(t, "u1", box.Slots[1].UserID)
	assert.True(t, occupiedSince.Equal(box.Slots[1].OccupiedSince))
	assert.Equal(t, models.SlotCorrupted, box.Slots[2].State)
}

func TestFindBoxByID_NotFound(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM boxes").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(boxRowColumns))

	_, err := repo.FindBoxByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBoxNotFound)
}

func TestFindBoxByID_SlotsNotAnArray(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM boxes").
		WillReturnRows(sqlmock.NewRows(boxRowColumns).
			AddRow("b1", "hall", "floor 1", 1, []byte(`{"0":null}`), int64(1), time.Now()))

	_, err := repo.FindBoxByID(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindFirstBoxByName_OrdersByCreation(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM boxes WHERE name = \\$1 ORDER BY created_at, id LIMIT 1").
		WithArgs("hall").
		WillReturnRows(sqlmock.NewRows(boxRowColumns).
			AddRow("b-old", "hall", "floor 1", 1, []byte("[null]"), int64(1), time.Now()))

	box, err := repo.FindFirstBoxByName(context.Background(), "hall")
	require.NoError(t, err)
	assert.Equal(t, "b-old", box.BoxID)
}

func TestSaveSlots(t *testing.T) {
	slots := []models.Slot{models.OccupiedSlot("u1", occupiedSince)}
	encoded := `[["u1","2026-03-01T10:00:00Z"]]`

	t.Run("version bumped", func(t *testing.T) {
		repo, mock, db := newTestBoxRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE boxes SET slots = \\$1, version = version \\+ 1").
			WithArgs(encoded, "b1", int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(4)))

		version, err := repo.SaveSlots(context.Background(), "b1", 3, slots)
		require.NoError(t, err)
		assert.Equal(t, int64(4), version)
	})

	t.Run("stale version", func(t *testing.T) {
		repo, mock, db := newTestBoxRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE boxes").
			WithArgs(encoded, "b1", int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		_, err := repo.SaveSlots(context.Background(), "b1", 3, slots)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("serialization failure", func(t *testing.T) {
		repo, mock, db := newTestBoxRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE boxes").
			WillReturnError(pgError(pgerrcode.SerializationFailure))

		_, err := repo.SaveSlots(context.Background(), "b1", 3, slots)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func testRelease() models.SlotRelease {
	return models.SlotRelease{
		BoxID:           "b1",
		ExpectedVersion: 3,
		Slots:           []models.Slot{models.FreeSlot()},
		Index:           0,
		UserID:          "u1",
		PriorTimeOfUse:  1000,
		TimeOfUse:       1500,
		Elapsed:         500,
	}
}

func TestReleaseSlot_CommitsBothWrites(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE boxes").
		WithArgs("[null]", "b1", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(4)))
	mock.ExpectExec("UPDATE users SET time_of_use = \\$1").
		WithArgs(int64(1500), "u1", int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReleaseSlot(context.Background(), testRelease()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseSlot_BoxVersionConflictRollsBack(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE boxes").
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectRollback()

	err := repo.ReleaseSlot(context.Background(), testRelease())
	assert.ErrorIs(t, err, ErrVersionConflict)
	require.NoError(t, mock.ExpectationsWereMet(), "the user must not be credited")
}

func TestReleaseSlot_TimeOfUseChangedRollsBack(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE boxes").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(4)))
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ReleaseSlot(context.Background(), testRelease())
	assert.ErrorIs(t, err, ErrVersionConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseSlot_CreditErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE boxes").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(4)))
	mock.ExpectExec("UPDATE users").
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.ReleaseSlot(context.Background(), testRelease())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseSlot_BeginFails(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.ReleaseSlot(context.Background(), testRelease())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestReleaseSlot_CommitFails(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE boxes").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(4)))
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.ReleaseSlot(context.Background(), testRelease())
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}
