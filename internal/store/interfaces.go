package store

import (
	"context"

	"github.com/MKhiriev/go-box-keeper/models"
)

// UserRepository stores locker customers.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUserPassword(ctx context.Context, userID, password string) error
}

// AdminRepository stores operators.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
	UpdateAdminPassword(ctx context.Context, adminID, password string) error
}

// BoxRepository stores boxes together with their slot documents.
//
// SaveSlots and ReleaseSlot only apply when the stored version still equals
// the expected one; otherwise they return [ErrVersionConflict] and change
// nothing.
type BoxRepository interface {
	CreateBox(ctx context.Context, box models.Box) (models.Box, error)
	FindBoxByID(ctx context.Context, boxID string) (models.Box, error)
	FindFirstBoxByName(ctx context.Context, name string) (models.Box, error)

	// SaveSlots rewrites the slot document and returns the new version.
	SaveSlots(ctx context.Context, boxID string, expectedVersion int64, slots []models.Slot) (int64, error)

	// ReleaseSlot rewrites the slot document and credits the former
	// occupant in a single transaction.
	ReleaseSlot(ctx context.Context, release models.SlotRelease) error
}

// ErrorClassificator decides whether a failed database call is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
