package repositories

import (
	"context"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// UserReader defines read operations for staff users.
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for staff users.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines the user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
