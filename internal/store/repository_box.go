package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
)

// boxRepository is the PostgreSQL-backed implementation of [BoxRepository].
// The slot sequence of a box lives in the JSONB column "slots"; every write
// to it is guarded by the "version" column.
type boxRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBoxRepository constructs a [BoxRepository] on the "boxes" table.
func NewBoxRepository(db *DB, logger *logger.Logger) BoxRepository {
	logger.Debug().Msg("creating box repository")
	return &boxRepository{
		db:     db,
		logger: logger,
	}
}

func scanBox(row rowScanner) (models.Box, error) {
	var box models.Box
	var slots []byte

	if err := row.Scan(&box.BoxID, &box.Name, &box.Placement, &box.Size, &slots, &box.Version, &box.CreatedAt); err != nil {
		return models.Box{}, err
	}

	// single slots never fail to decode, only a non-array document does
	if err := json.Unmarshal(slots, &box.Slots); err != nil {
		return models.Box{}, fmt.Errorf("%w: slots of box %s: %w", ErrScanningRow, box.BoxID, err)
	}

	return box, nil
}

// CreateBox inserts a box with its initial slot document.
func (r *boxRepository) CreateBox(ctx context.Context, box models.Box) (models.Box, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBoxQuery(box)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.CreateBox").Msg("failed to build query")
		return models.Box{}, err
	}

	created, err := scanBox(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.CreateBox").Str("name", box.Name).Msg("error inserting box")
		if errors.Is(err, ErrScanningRow) {
			return models.Box{}, err
		}
		return models.Box{}, r.db.wrapQueryError(err, ErrExecutingQuery)
	}

	log.Info().Str("func", "*boxRepository.CreateBox").Str("box_id", created.BoxID).Int("size", created.Size).Msg("box created")
	return created, nil
}

// FindBoxByID returns the box or [ErrBoxNotFound].
func (r *boxRepository) FindBoxByID(ctx context.Context, boxID string) (models.Box, error) {
	query, args, err := buildSelectBoxByIDQuery(boxID)
	if err != nil {
		return models.Box{}, err
	}

	return r.findBox(ctx, "*boxRepository.FindBoxByID", query, args)
}

// FindFirstBoxByName returns the oldest box with the given name or
// [ErrBoxNotFound]. Names are not unique.
func (r *boxRepository) FindFirstBoxByName(ctx context.Context, name string) (models.Box, error) {
	query, args, err := buildSelectFirstBoxByNameQuery(name)
	if err != nil {
		return models.Box{}, err
	}

	return r.findBox(ctx, "*boxRepository.FindFirstBoxByName", query, args)
}

func (r *boxRepository) findBox(ctx context.Context, funcName, query string, args []any) (models.Box, error) {
	log := logger.FromContext(ctx)

	box, err := scanBox(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Box{}, ErrBoxNotFound
		}

		log.Err(err).Str("func", funcName).Msg("error selecting box")
		if errors.Is(err, ErrScanningRow) {
			return models.Box{}, err
		}
		return models.Box{}, r.db.wrapQueryError(err, ErrExecutingQuery)
	}

	return box, nil
}

// SaveSlots rewrites the slot document of a box whose version is still
// expectedVersion and returns the new version.
func (r *boxRepository) SaveSlots(ctx context.Context, boxID string, expectedVersion int64, slots []models.Slot) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBoxSlotsQuery(boxID, expectedVersion, slots)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.SaveSlots").Msg("failed to build query")
		return 0, err
	}

	var version int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*boxRepository.SaveSlots").
				Str("box_id", boxID).
				Int64("expected_version", expectedVersion).
				Msg("optimistic lock failed: box version mismatch")
			return 0, ErrVersionConflict
		}

		log.Err(err).Str("func", "*boxRepository.SaveSlots").Str("box_id", boxID).Msg("error updating slots")
		return 0, r.db.wrapQueryError(err, ErrExecutingStatement)
	}

	return version, nil
}

// ReleaseSlot clears a slot and credits the former occupant in one
// transaction. If the box version moved or the user's time of use changed
// since it was read, nothing is written and [ErrVersionConflict] is returned.
func (r *boxRepository) ReleaseSlot(ctx context.Context, release models.SlotRelease) error {
	log := logger.FromContext(ctx)

	boxQuery, boxArgs, err := buildUpdateBoxSlotsQuery(release.BoxID, release.ExpectedVersion, release.Slots)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.ReleaseSlot").Msg("failed to build box query")
		return err
	}

	userQuery, userArgs, err := buildCreditUserQuery(release.UserID, release.PriorTimeOfUse, release.TimeOfUse)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.ReleaseSlot").Msg("failed to build user query")
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*boxRepository.ReleaseSlot").
			Str("box_id", release.BoxID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.wrapQueryError(err, ErrExecutingStatement))
	}
	defer tx.Rollback()

	var version int64
	if err = tx.QueryRowContext(ctx, boxQuery, boxArgs...).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*boxRepository.ReleaseSlot").
				Str("box_id", release.BoxID).
				Int64("expected_version", release.ExpectedVersion).
				Msg("optimistic lock failed: box version mismatch")
			return ErrVersionConflict
		}

		log.Err(err).Str("func", "*boxRepository.ReleaseSlot").Str("box_id", release.BoxID).Msg("error updating slots")
		return r.db.wrapQueryError(err, ErrExecutingStatement)
	}

	res, err := tx.ExecContext(ctx, userQuery, userArgs...)
	if err != nil {
		log.Err(err).Str("func", "*boxRepository.ReleaseSlot").Str("user_id", release.UserID).Msg("error crediting user")
		return r.db.wrapQueryError(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*boxRepository.ReleaseSlot").
			Str("user_id", release.UserID).
			Int64("prior_time_of_use", release.PriorTimeOfUse).
			Msg("optimistic lock failed: time of use changed")
		return ErrVersionConflict
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boxRepository.ReleaseSlot").Str("box_id", release.BoxID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*boxRepository.ReleaseSlot").
		Str("box_id", release.BoxID).
		Int("slot", release.Index).
		Str("user_id", release.UserID).
		Int64("elapsed_ms", release.Elapsed).
		Int64("time_of_use", release.TimeOfUse).
		Int64("version", version).
		Msg("slot released")

	return nil
}
