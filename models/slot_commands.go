package models

// UnassignCommand asks the slot engine to release one slot. Admin is the
// already authorized operator; it is only used for diagnostics.
type UnassignCommand struct {
	Admin Admin
	Box   BoxKey
	Index int
}

// AssignCommand asks the slot engine to put the user identified by
// UserEmail into a free slot.
type AssignCommand struct {
	Admin     Admin
	Box       BoxKey
	Index     int
	UserEmail string
}

// SlotRelease is the write set of a successful unassign. The store applies
// it atomically: the box update is conditional on ExpectedVersion and the
// user update on PriorTimeOfUse.
type SlotRelease struct {
	BoxID           string
	ExpectedVersion int64
	Slots           []Slot
	Index           int

	UserID         string
	PriorTimeOfUse int64
	TimeOfUse      int64
	Elapsed        int64
}
