// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/lock"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/metrics"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/models"
)

// Operation labels reported to SlotMetrics.
const (
	operationUnassign = "unassign"
	operationAssign   = "assign"
)

// Integrity fault kinds reported to SlotMetrics.
const (
	faultSlotWithoutDate   = "slot_without_date"
	faultOccupantNotFound  = "occupant_not_found"
	faultOccupantCorrupted = "occupant_corrupted"
)

// slotService is the slot lifecycle engine.
//
// Every mutation runs under the box lock and is written with a version
// check, so two operations on the same box never both succeed on stale
// slots.
type slotService struct {
	// boxService resolves the box key of a command before the lock is taken.
	boxService BoxService

	// boxRepository re-reads the box under the lock and persists slot changes.
	boxRepository store.BoxRepository

	// userRepository finds occupants and users to seat.
	userRepository store.UserRepository

	// locker and lockOptions control the per-box mutual exclusion.
	locker      lock.Locker
	lockOptions lock.Options

	metrics SlotMetrics

	// now is the clock used for occupancy windows.
	now func() time.Time

	logger *logger.Logger
}

// NewSlotService constructs the slot engine. A nil slotMetrics disables
// metric reporting.
func NewSlotService(
	boxService BoxService,
	boxRepository store.BoxRepository,
	userRepository store.UserRepository,
	locker lock.Locker,
	cfg config.Lock,
	slotMetrics SlotMetrics,
	logger *logger.Logger,
) SlotService {
	if slotMetrics == nil {
		slotMetrics = nopSlotMetrics{}
	}

	return &slotService{
		boxService:     boxService,
		boxRepository:  boxRepository,
		userRepository: userRepository,
		locker:         locker,
		lockOptions: lock.Options{
			TTL:        cfg.TTL,
			Retries:    cfg.Retries,
			RetryDelay: cfg.RetryDelay,
		},
		metrics: slotMetrics,
		now:     time.Now,
		logger:  logger,
	}
}

// Unassign frees the slot cmd.Index of the box and credits its occupant
// with the milliseconds elapsed since the slot was taken.
//
// Checks run in this order, the first failing one wins:
//   - ErrSlotOutOfRange if the index does not address a slot.
//   - ErrSlotNotAllocated if the slot is free.
//   - ErrSlotWithoutDate if the stored slot value is malformed.
//   - ErrOccupantNotFound if the occupant's account is gone.
//   - ErrOccupantCorrupted if the occupant's time of use is malformed.
//
// The last three are integrity faults and are logged as critical or error.
// The slot is cleared and the user credited in one transaction; a
// concurrent change of either yields ErrVersionConflict and nothing is
// written.
func (s *slotService) Unassign(ctx context.Context, cmd models.UnassignCommand) (release models.SlotRelease, err error) {
	defer func() { s.metrics.ObserveSlotOperation(operationUnassign, outcomeOf(err)) }()

	log := logger.FromContext(ctx)

	box, unlock, err := s.lockBox(ctx, cmd.Box)
	if err != nil {
		return models.SlotRelease{}, err
	}
	defer unlock()

	if !box.InRange(cmd.Index) {
		log.Warn().
			Str("func", "*slotService.Unassign").
			Str("box_id", box.BoxID).
			Int("slot", cmd.Index).
			Int("slots", len(box.Slots)).
			Msg("slot index out of range")
		return models.SlotRelease{}, ErrSlotOutOfRange
	}

	slot := box.Slots[cmd.Index]
	switch slot.State {
	case models.SlotFree:
		log.Warn().Str("func", "*slotService.Unassign").Str("box_id", box.BoxID).Int("slot", cmd.Index).Msg("slot is not allocated")
		return models.SlotRelease{}, ErrSlotNotAllocated
	case models.SlotCorrupted:
		log.Critical().
			Str("func", "*slotService.Unassign").
			Str("admin_email", cmd.Admin.Email).
			Str("box_id", box.BoxID).
			Int("slot", cmd.Index).
			Str("value", string(slot.Raw())).
			Msg("slot does not contain an occupancy date")
		s.metrics.ObserveIntegrityFault(faultSlotWithoutDate)
		return models.SlotRelease{}, ErrSlotWithoutDate
	}

	user, err := s.userRepository.FindUserByID(ctx, slot.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Critical().
			Str("func", "*slotService.Unassign").
			Str("admin_email", cmd.Admin.Email).
			Str("box_id", box.BoxID).
			Int("slot", cmd.Index).
			Str("user_id", slot.UserID).
			Msg("slot occupant does not exist")
		s.metrics.ObserveIntegrityFault(faultOccupantNotFound)
		return models.SlotRelease{}, ErrOccupantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*slotService.Unassign").Str("user_id", slot.UserID).Msg("occupant lookup ended with error")
		return models.SlotRelease{}, fmt.Errorf("occupant lookup ended with error: %w", err)
	}

	if !user.HasValidTimeOfUse() {
		log.Error().
			Str("func", "*slotService.Unassign").
			Str("box_id", box.BoxID).
			Int("slot", cmd.Index).
			Str("user_id", user.UserID).
			Msg("slot occupant has a malformed time of use")
		s.metrics.ObserveIntegrityFault(faultOccupantCorrupted)
		return models.SlotRelease{}, ErrOccupantCorrupted
	}

	now := s.now()
	elapsed := now.Sub(slot.OccupiedSince).Milliseconds()
	if elapsed < 0 {
		log.Warn().
			Str("func", "*slotService.Unassign").
			Str("box_id", box.BoxID).
			Int("slot", cmd.Index).
			Time("occupied_since", slot.OccupiedSince).
			Time("now", now).
			Msg("occupancy starts in the future, crediting nothing")
		elapsed = 0
	}

	slots := box.CloneSlots()
	slots[cmd.Index] = models.FreeSlot()

	release = models.SlotRelease{
		BoxID:           box.BoxID,
		ExpectedVersion: box.Version,
		Slots:           slots,
		Index:           cmd.Index,
		UserID:          user.UserID,
		PriorTimeOfUse:  *user.TimeOfUse,
		TimeOfUse:       AccrueUsage(*user.TimeOfUse, elapsed),
		Elapsed:         elapsed,
	}

	if err = s.boxRepository.ReleaseSlot(ctx, release); err != nil {
		log.Err(err).Str("func", "*slotService.Unassign").Str("box_id", box.BoxID).Int("slot", cmd.Index).Msg("slot release ended with error")
		return models.SlotRelease{}, wrapSlotWriteError(err)
	}

	s.metrics.AddCreditedUsage(elapsed)
	return release, nil
}

// Assign seats the user with email cmd.UserEmail in the free slot
// cmd.Index and returns the box as written.
func (s *slotService) Assign(ctx context.Context, cmd models.AssignCommand) (updated models.Box, err error) {
	defer func() { s.metrics.ObserveSlotOperation(operationAssign, outcomeOf(err)) }()

	log := logger.FromContext(ctx)

	box, unlock, err := s.lockBox(ctx, cmd.Box)
	if err != nil {
		return models.Box{}, err
	}
	defer unlock()

	if !box.InRange(cmd.Index) {
		log.Warn().
			Str("func", "*slotService.Assign").
			Str("box_id", box.BoxID).
			Int("slot", cmd.Index).
			Int("slots", len(box.Slots)).
			Msg("slot index out of range")
		return models.Box{}, ErrSlotOutOfRange
	}

	switch slot := box.Slots[cmd.Index]; slot.State {
	case models.SlotOccupied:
		log.Warn().Str("func", "*slotService.Assign").Str("box_id", box.BoxID).Int("slot", cmd.Index).Msg("slot is already allocated")
		return models.Box{}, ErrSlotAlreadyAllocated
	case models.SlotCorrupted:
		log.Critical().
			Str("func", "*slotService.Assign").
			Str("admin_email", cmd.Admin.Email).
			Str("box_id", box.BoxID).
			Int("slot", cmd.Index).
			Str("value", string(slot.Raw())).
			Msg("slot does not contain an occupancy date")
		s.metrics.ObserveIntegrityFault(faultSlotWithoutDate)
		return models.Box{}, ErrSlotWithoutDate
	}

	user, err := s.userRepository.FindUserByEmail(ctx, cmd.UserEmail)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "*slotService.Assign").Str("email", cmd.UserEmail).Msg("user not found")
		return models.Box{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*slotService.Assign").Msg("user lookup ended with error")
		return models.Box{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	slots := box.CloneSlots()
	slots[cmd.Index] = models.OccupiedSlot(user.UserID, s.now())

	version, err := s.boxRepository.SaveSlots(ctx, box.BoxID, box.Version, slots)
	if err != nil {
		log.Err(err).Str("func", "*slotService.Assign").Str("box_id", box.BoxID).Int("slot", cmd.Index).Msg("slot assignment ended with error")
		return models.Box{}, wrapSlotWriteError(err)
	}

	box.Slots = slots
	box.Version = version

	log.Info().
		Str("func", "*slotService.Assign").
		Str("box_id", box.BoxID).
		Int("slot", cmd.Index).
		Str("user_id", user.UserID).
		Int64("version", version).
		Msg("slot assigned")

	return box, nil
}

// lockBox resolves key, takes the box lock and reads the box again under
// it. The returned unlock must be called when the caller is done writing.
func (s *slotService) lockBox(ctx context.Context, key models.BoxKey) (models.Box, func(), error) {
	log := logger.FromContext(ctx)

	resolved, err := s.boxService.Resolve(ctx, key)
	if err != nil {
		return models.Box{}, nil, err
	}

	boxLock := lock.NewLock(s.locker, lock.Keys.Box(resolved.BoxID))
	if err = boxLock.Acquire(ctx, s.lockOptions); err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			log.Warn().Str("func", "*slotService.lockBox").Str("box_id", resolved.BoxID).Msg("box is busy")
			return models.Box{}, nil, ErrBoxBusy
		}

		log.Err(err).Str("func", "*slotService.lockBox").Str("box_id", resolved.BoxID).Msg("failed to acquire box lock")
		return models.Box{}, nil, fmt.Errorf("%w: %w", ErrLockUnavailable, err)
	}

	unlock := func() {
		// the request context may already be cancelled here
		if err := boxLock.Release(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Str("func", "*slotService.lockBox").Str("lock", boxLock.Key()).Msg("failed to release box lock")
		}
	}

	box, err := s.boxRepository.FindBoxByID(ctx, resolved.BoxID)
	if err != nil {
		unlock()
		if errors.Is(err, store.ErrBoxNotFound) {
			return models.Box{}, nil, fmt.Errorf("%w: %s", ErrBoxNotFound, key)
		}

		log.Err(err).Str("func", "*slotService.lockBox").Str("box_id", resolved.BoxID).Msg("box reload ended with error")
		return models.Box{}, nil, fmt.Errorf("box reload ended with error: %w", err)
	}

	return box, unlock, nil
}

func wrapSlotWriteError(err error) error {
	if errors.Is(err, store.ErrVersionConflict) {
		return fmt.Errorf("%w: %w", ErrVersionConflict, err)
	}
	return fmt.Errorf("slot write ended with error: %w", err)
}

// outcomeOf maps an engine result to a metrics outcome label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrSlotWithoutDate),
		errors.Is(err, ErrOccupantNotFound),
		errors.Is(err, ErrOccupantCorrupted):
		return metrics.OutcomeFault
	case errors.Is(err, ErrBoxBusy),
		errors.Is(err, ErrVersionConflict),
		errors.Is(err, ErrSlotAlreadyAllocated):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrSlotOutOfRange),
		errors.Is(err, ErrSlotNotAllocated),
		errors.Is(err, ErrBoxNotFound),
		errors.Is(err, ErrBoxKeyAmbiguous),
		errors.Is(err, ErrUserNotFound):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}

type nopSlotMetrics struct{}

func (nopSlotMetrics) ObserveSlotOperation(string, string) {}
func (nopSlotMetrics) ObserveIntegrityFault(string)        {}
func (nopSlotMetrics) AddCreditedUsage(int64)              {}
