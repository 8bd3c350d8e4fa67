package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/models"
)

// userAccountService handles customer accounts. Password digests are
// computed by clients and compared verbatim.
type userAccountService struct {
	userRepository store.UserRepository
	idGenerator    IDGenerator

	logger *logger.Logger
}

// NewUserAccountService constructs a UserAccountService. Input is not
// validated here; wrap the result with NewUserAccountValidationService.
func NewUserAccountService(userRepository store.UserRepository, idGenerator IDGenerator, logger *logger.Logger) UserAccountService {
	return &userAccountService{
		userRepository: userRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// Login checks the credentials and returns the user, whose TimeOfUse is
// reported back to the caller. No session is created.
func (s *userAccountService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.findUser(ctx, credentials.Email)
	if err != nil {
		return models.User{}, err
	}

	if user.Password != credentials.Password {
		log.Warn().Str("func", "*userAccountService.Login").Str("user_id", user.UserID).Msg("wrong credentials")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

// ChangePassword replaces the stored digest after checking the old one.
func (s *userAccountService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	user, err := s.findUser(ctx, change.Email)
	if err != nil {
		return err
	}

	if user.Password != change.OldPassword {
		log.Warn().Str("func", "*userAccountService.ChangePassword").Str("user_id", user.UserID).Msg("wrong credentials")
		return ErrWrongCredentials
	}

	if err = s.userRepository.UpdateUserPassword(ctx, user.UserID, change.NewPassword); err != nil {
		log.Err(err).Str("func", "*userAccountService.ChangePassword").Str("user_id", user.UserID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// CreateUser registers a customer with zero time of use.
//
// Returns the persisted user or:
//   - ErrUserEmailTaken if the email is already registered.
//   - A wrapped storage error otherwise.
func (s *userAccountService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var zero int64
	user.UserID = s.idGenerator.Generate()
	user.TimeOfUse = &zero

	created, err := s.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserEmailTaken, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*userAccountService.CreateUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*userAccountService.CreateUser").Str("user_id", created.UserID).Msg("user created")
	return created, nil
}

func (s *userAccountService) findUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "*userAccountService.findUser").Str("email", email).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userAccountService.findUser").Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	return user, nil
}
