package service

import (
	"context"

	"github.com/MKhiriev/go-box-keeper/models"
)

// AdminGateService checks the {email, password} object every privileged
// request carries.
type AdminGateService interface {
	Authorize(ctx context.Context, login models.Credentials) (models.Admin, error)
}

// BoxService creates boxes and finds them by id or by name.
type BoxService interface {
	Resolve(ctx context.Context, key models.BoxKey) (models.Box, error)
	Create(ctx context.Context, box models.Box) (models.Box, error)
}

// SlotService moves users in and out of box slots.
type SlotService interface {
	// Unassign frees an occupied slot and credits the occupant with the
	// time spent in it. The returned release describes what was written.
	Unassign(ctx context.Context, cmd models.UnassignCommand) (models.SlotRelease, error)

	// Assign puts a user into a free slot and returns the updated box.
	Assign(ctx context.Context, cmd models.AssignCommand) (models.Box, error)
}

// UserAccountService serves the customer account endpoints.
type UserAccountService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// AdminAccountService serves the operator account endpoints.
type AdminAccountService interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SlotMetrics receives slot engine events. *metrics.Metrics implements it.
type SlotMetrics interface {
	ObserveSlotOperation(operation, outcome string)
	ObserveIntegrityFault(kind string)
	AddCreditedUsage(ms int64)
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// UserAccountServiceWrapper decorates a UserAccountService, e.g. with input
// validation.
type UserAccountServiceWrapper interface {
	Wrap(UserAccountService) UserAccountService
}

// AdminAccountServiceWrapper decorates an AdminAccountService.
type AdminAccountServiceWrapper interface {
	Wrap(AdminAccountService) AdminAccountService
}

// BoxServiceWrapper decorates a BoxService.
type BoxServiceWrapper interface {
	Wrap(BoxService) BoxService
}
