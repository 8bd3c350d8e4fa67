package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/models"
)

// adminGateService authorizes privileged requests against the admin table.
type adminGateService struct {
	adminRepository store.AdminRepository

	logger *logger.Logger
}

// NewAdminGateService constructs an AdminGateService backed by the given
// AdminRepository.
func NewAdminGateService(adminRepository store.AdminRepository, logger *logger.Logger) AdminGateService {
	return &adminGateService{
		adminRepository: adminRepository,
		logger:          logger,
	}
}

// Authorize looks the admin up by email and compares the supplied digest
// with the stored one.
//
// Returns the admin or:
//   - ErrAdminLoginNotFound if no admin has that email.
//   - ErrBadLoginPassword if the digests differ.
//   - A wrapped storage error otherwise.
func (s *adminGateService) Authorize(ctx context.Context, login models.Credentials) (models.Admin, error) {
	log := logger.FromContext(ctx)

	admin, err := s.adminRepository.FindAdminByEmail(ctx, login.Email)
	if errors.Is(err, store.ErrAdminNotFound) {
		log.Warn().Str("func", "*adminGateService.Authorize").Str("admin_email", login.Email).Msg("admin login not found")
		return models.Admin{}, ErrAdminLoginNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*adminGateService.Authorize").Msg("admin lookup ended with error")
		return models.Admin{}, fmt.Errorf("admin lookup ended with error: %w", err)
	}

	if admin.Password != login.Password {
		log.Warn().Str("func", "*adminGateService.Authorize").Str("admin_email", login.Email).Msg("bad login password")
		return models.Admin{}, ErrBadLoginPassword
	}

	return admin, nil
}
