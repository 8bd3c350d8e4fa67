package store

import "github.com/MKhiriev/go-box-keeper/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository  UserRepository
	AdminRepository AdminRepository
	BoxRepository   BoxRepository
}

// NewStorages builds every PostgreSQL repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		AdminRepository: NewAdminRepository(db, log),
		BoxRepository:   NewBoxRepository(db, log),
	}
}
