package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Admin gate.
var (
	ErrAdminLoginNotFound = errors.New("admin login not found")
	ErrBadLoginPassword   = errors.New("bad login password")
)

// Boxes and slots.
var (
	ErrBoxKeyAmbiguous      = errors.New("exactly one of box id or box name is required")
	ErrBoxNotFound          = errors.New("box not found")
	ErrBoxBusy              = errors.New("box is locked by another operation")
	ErrLockUnavailable      = errors.New("box lock backend is unavailable")
	ErrVersionConflict      = errors.New("box was modified concurrently")
	ErrSlotOutOfRange       = errors.New("slot index is out of range")
	ErrSlotNotAllocated     = errors.New("slot is not allocated")
	ErrSlotAlreadyAllocated = errors.New("slot is already allocated")
)

// Integrity faults: stored data that should never exist.
var (
	ErrSlotWithoutDate   = errors.New("slot does not contain an occupancy date")
	ErrOccupantNotFound  = errors.New("slot occupant does not exist")
	ErrOccupantCorrupted = errors.New("slot occupant has a malformed time of use")
)

// Accounts.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrUserEmailTaken   = errors.New("user with this email already exists")
	ErrAdminEmailTaken  = errors.New("admin with this email already exists")
)
