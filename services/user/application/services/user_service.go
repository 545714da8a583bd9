package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/storefront/pkg/auth"
	userdomain "github.com/ghuser/storefront/services/user/domain"
	"github.com/ghuser/storefront/services/user/domain/models"
	"github.com/ghuser/storefront/services/user/domain/repositories"
)

// UserService orchestrates registration and login. It owns no durable state:
// every lookup round-trips the user directory, and issued tokens are
// self-contained so nothing is kept between requests.
type UserService struct {
	repo   repositories.UserRepository
	tokens *auth.TokenService
}

// NewUserService returns a UserService wired with the given repository and token service.
func NewUserService(repo repositories.UserRepository, tokens *auth.TokenService) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a new user and issues a token for the fresh identity.
//
// The existence check before hashing keeps the common duplicate case cheap
// (no bcrypt work, no insert); the unique index on email remains the
// authoritative guard when two registrations race.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	addr, err := models.NewEmailAddress(email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", userdomain.ErrInvalidEmail, err)
	}

	_, err = s.repo.GetByEmail(ctx, addr.String())
	if err == nil {
		return nil, "", userdomain.ErrEmailTaken
	}
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(addr, hash)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(auth.Identity{UserID: user.ID, Email: user.Email.String()})
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a token. Every failure mode — unknown
// email or wrong password — collapses into ErrInvalidCredentials so responses
// never reveal whether the email exists.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return nil, "", userdomain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", userdomain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Identity{UserID: user.ID, Email: user.Email.String()})
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}
