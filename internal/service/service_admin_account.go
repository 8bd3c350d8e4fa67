package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
)

// adminAccountService handles operator accounts.
type adminAccountService struct {
	adminRepository store.AdminRepository
	idGenerator     IDGenerator

	// validator checks the new digest of a password change, which is only
	// looked at once the old one has been accepted.
	validator validators.Validator

	logger *logger.Logger
}

func NewAdminAccountService(adminRepository store.AdminRepository, idGenerator IDGenerator, logger *logger.Logger) AdminAccountService {
	return &adminAccountService{
		adminRepository: adminRepository,
		idGenerator:     idGenerator,
		validator:       validators.NewAccountValidator(),
		logger:          logger,
	}
}

// CreateAdmin registers an operator.
func (s *adminAccountService) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	admin.AdminID = s.idGenerator.Generate()

	created, err := s.adminRepository.CreateAdmin(ctx, admin)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrAdminEmailTaken, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*adminAccountService.CreateAdmin").Msg("admin creation ended with error")
		return models.Admin{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Str("func", "*adminAccountService.CreateAdmin").Str("admin_id", created.AdminID).Msg("admin created")
	return created, nil
}

// ChangePassword replaces an admin digest. The new digest is validated
// only after the old one matched.
func (s *adminAccountService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	admin, err := s.adminRepository.FindAdminByEmail(ctx, change.Email)
	if errors.Is(err, store.ErrAdminNotFound) {
		log.Warn().Str("func", "*adminAccountService.ChangePassword").Str("email", change.Email).Msg("admin not found")
		return ErrAdminNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*adminAccountService.ChangePassword").Msg("admin lookup ended with error")
		return fmt.Errorf("admin lookup ended with error: %w", err)
	}

	if admin.Password != change.OldPassword {
		log.Warn().Str("func", "*adminAccountService.ChangePassword").Str("admin_id", admin.AdminID).Msg("wrong credentials")
		return ErrWrongCredentials
	}

	if err = s.validator.Validate(ctx, change, validators.FieldNewPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.adminRepository.UpdateAdminPassword(ctx, admin.AdminID, change.NewPassword); err != nil {
		log.Err(err).Str("func", "*adminAccountService.ChangePassword").Str("admin_id", admin.AdminID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}
