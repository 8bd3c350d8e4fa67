package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
)

// Validation wrappers reject malformed input before the wrapped service
// touches storage. Returned errors wrap ErrInvalidDataProvided and the
// validators error naming the offending field.

type UserAccountValidationService struct {
	inner     UserAccountService
	validator validators.Validator
}

func NewUserAccountValidationService() UserAccountServiceWrapper {
	return &UserAccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *UserAccountValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *UserAccountValidationService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChangePassword(ctx, change)
}

func (v *UserAccountValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserAccountValidationService) Wrap(wrapped UserAccountService) UserAccountService {
	v.inner = wrapped
	return v
}

type AdminAccountValidationService struct {
	inner     AdminAccountService
	validator validators.Validator
}

func NewAdminAccountValidationService() AdminAccountServiceWrapper {
	return &AdminAccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AdminAccountValidationService) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	if err := v.validator.Validate(ctx, admin); err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateAdmin(ctx, admin)
}

// ChangePassword only checks the email and the old digest; the new digest
// is checked by the wrapped service after authentication.
func (v *AdminAccountValidationService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change, validators.FieldEmail, validators.FieldOldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChangePassword(ctx, change)
}

func (v *AdminAccountValidationService) Wrap(wrapped AdminAccountService) AdminAccountService {
	v.inner = wrapped
	return v
}

type BoxValidationService struct {
	inner     BoxService
	validator validators.Validator
}

func NewBoxValidationService() BoxServiceWrapper {
	return &BoxValidationService{
		validator: validators.NewAccountValidator(),
	}
}

// Resolve is passed through; the box key is checked by the wrapped service.
func (v *BoxValidationService) Resolve(ctx context.Context, key models.BoxKey) (models.Box, error) {
	return v.inner.Resolve(ctx, key)
}

func (v *BoxValidationService) Create(ctx context.Context, box models.Box) (models.Box, error) {
	if err := v.validator.Validate(ctx, box); err != nil {
		return models.Box{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, box)
}

func (v *BoxValidationService) Wrap(wrapped BoxService) BoxService {
	v.inner = wrapped
	return v
}
