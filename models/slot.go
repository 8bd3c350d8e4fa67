package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// SlotState enumerates the three shapes a stored slot can take.
type SlotState int

const (
	// SlotFree marks an empty position, stored as JSON null.
	SlotFree SlotState = iota
	// SlotOccupied marks a position held by a user since a point in time,
	// stored as ["<user id>", "<RFC 3339 timestamp>"].
	SlotOccupied
	// SlotCorrupted marks any other stored value. Correct code never writes
	// it; it is detected when the box is read back.
	SlotCorrupted
)

func (s SlotState) String() string {
	switch s {
	case SlotFree:
		return "free"
	case SlotOccupied:
		return "occupied"
	case SlotCorrupted:
		return "corrupted"
	default:
		return "unknown"
	}
}

var jsonNull = []byte("null")

// Slot is one addressable position of a [Box].
//
// The zero value is a free slot. Decoding never fails: a stored value that
// is neither null nor a well-formed occupancy pair becomes a SlotCorrupted
// slot that keeps the original bytes, so re-encoding the box does not
// destroy evidence.
type Slot struct {
	State         SlotState
	UserID        string
	OccupiedSince time.Time

	raw json.RawMessage
}

// FreeSlot returns an empty slot.
func FreeSlot() Slot {
	return Slot{State: SlotFree}
}

// OccupiedSlot returns a slot held by userID since the given instant.
func OccupiedSlot(userID string, since time.Time) Slot {
	return Slot{State: SlotOccupied, UserID: userID, OccupiedSince: since}
}

// CorruptedSlot wraps a stored value that does not describe a valid slot.
func CorruptedSlot(raw []byte) Slot {
	return Slot{State: SlotCorrupted, raw: append(json.RawMessage(nil), raw...)}
}

// NewSlots returns size free slots.
func NewSlots(size int) []Slot {
	return make([]Slot, size)
}

// Raw returns the stored bytes of a corrupted slot, nil otherwise.
func (s Slot) Raw() json.RawMessage {
	return s.raw
}

// MarshalJSON implements [json.Marshaler].
func (s Slot) MarshalJSON() ([]byte, error) {
	switch s.State {
	case SlotOccupied:
		return json.Marshal([2]string{s.UserID, s.OccupiedSince.UTC().Format(time.RFC3339Nano)})
	case SlotCorrupted:
		if len(s.raw) == 0 {
			return jsonNull, nil
		}
		return s.raw, nil
	default:
		return jsonNull, nil
	}
}

// UnmarshalJSON implements [json.Unmarshaler]. It never returns an error.
func (s *Slot) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		*s = FreeSlot()
		return nil
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(trimmed, &pair); err != nil || len(pair) != 2 {
		*s = CorruptedSlot(trimmed)
		return nil
	}

	var userID, since string
	if err := json.Unmarshal(pair[0], &userID); err != nil || userID == "" {
		*s = CorruptedSlot(trimmed)
		return nil
	}
	if err := json.Unmarshal(pair[1], &since); err != nil {
		*s = CorruptedSlot(trimmed)
		return nil
	}

	occupiedSince, err := time.Parse(time.RFC3339Nano, since)
	if err != nil {
		*s = CorruptedSlot(trimmed)
		return nil
	}

	*s = OccupiedSlot(userID, occupiedSince)
	return nil
}
