package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/jackc/pgerrcode"
)

type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] on the "admins" table.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

func scanAdmin(row rowScanner) (models.Admin, error) {
	var admin models.Admin
	if err := row.Scan(&admin.AdminID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt); err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAdminQuery(admin)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("failed to build query")
		return models.Admin{}, err
	}

	created, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().Str("func", "*adminRepository.CreateAdmin").Str("email", admin.Email).Msg("email is already taken")
			return models.Admin{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error inserting admin")
		return models.Admin{}, r.db.wrapQueryError(err, ErrExecutingQuery)
	}

	return created, nil
}

func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAdminByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.FindAdminByEmail").Msg("failed to build query")
		return models.Admin{}, err
	}

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}

		log.Err(err).Str("func", "*adminRepository.FindAdminByEmail").Msg("error selecting admin")
		return models.Admin{}, r.db.wrapQueryError(err, ErrExecutingQuery)
	}

	return admin, nil
}

func (r *adminRepository) UpdateAdminPassword(ctx context.Context, adminID, password string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAdminPasswordQuery(adminID, password)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.UpdateAdminPassword").Msg("failed to build query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.UpdateAdminPassword").Str("admin_id", adminID).Msg("error updating password")
		return r.db.wrapQueryError(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAdminNotFound
	}

	return nil
}
