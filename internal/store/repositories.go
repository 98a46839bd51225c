package store

import "github.com/contacthub/contacthub/internal/logger"

// Repositories bundles every repository behind one constructor so the wiring
// in main stays a single call.
type Repositories struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
	}
}
