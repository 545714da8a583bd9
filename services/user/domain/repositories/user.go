package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken when the email
	// uniqueness constraint is violated.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail retrieves a user by exact email match.
	// Returns ErrUserNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID retrieves a user by ID. Returns ErrUserNotFound when no user matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
