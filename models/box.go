package models

import "time"

// Box is a locker with a fixed number of slots. It is persisted as a whole:
// any slot change rewrites Slots and bumps Version.
type Box struct {
	BoxID     string    `json:"id"`
	Name      string    `json:"name"`
	Placement string    `json:"placement"`
	Size      int       `json:"size"`
	Slots     []Slot    `json:"slots"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// InRange reports whether index addresses an existing slot.
func (b Box) InRange(index int) bool {
	return index >= 0 && index < len(b.Slots)
}

// CloneSlots returns a copy of the slot sequence that can be modified
// without touching b.
func (b Box) CloneSlots() []Slot {
	slots := make([]Slot, len(b.Slots))
	copy(slots, b.Slots)
	return slots
}

// BoxKey selects a box either by identifier or by name. Exactly one of the
// fields is expected to be set.
type BoxKey struct {
	ID   string
	Name string
}

// String renders the key for logs.
func (k BoxKey) String() string {
	if k.ID != "" {
		return "id:" + k.ID
	}
	return "name:" + k.Name
}
