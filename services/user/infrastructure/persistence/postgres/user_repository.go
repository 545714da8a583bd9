package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/storefront/pkg/database"
	"github.com/ghuser/storefront/pkg/events"
	userdomain "github.com/ghuser/storefront/services/user/domain"
	domainevents "github.com/ghuser/storefront/services/user/domain/events"
	"github.com/ghuser/storefront/services/user/domain/models"
)

const pgUniqueViolation = "23505"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewUserRepository returns a UserRepository backed by the given connection pool
// and event bus. The bus is used to publish UserRegisteredEvents after a successful create.
func NewUserRepository(db *database.Database, bus *events.EventBus) *UserRepository {
	return &UserRepository{db: db, bus: bus}
}

// Create persists a new User and publishes a UserRegisteredEvent within the same
// transaction. The unique index on email is the authoritative uniqueness check:
// a violation returns ErrEmailTaken even when two registrations race past the
// service-level existence lookup.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
			user.ID, user.Email.String(), user.PasswordHash, user.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return userdomain.ErrEmailTaken
			}
			return fmt.Errorf("insert user: %w", err)
		}

		if r.bus != nil {
			if err := r.publishRegistered(tx, user); err != nil {
				return fmt.Errorf("publish user registered: %w", err)
			}
		}
		return nil
	})
}

// GetByEmail retrieves a User by exact email match. Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

// GetByID retrieves a User by ID. Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) publishRegistered(tx *sql.Tx, user *models.User) error {
	event := domainevents.UserRegisteredEvent{
		EventID:    uuid.New(),
		Version:    1,
		UserID:     user.ID,
		Email:      user.Email.String(),
		OccurredAt: user.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicUserRegistered, msg)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var email string
	if err := row.Scan(&u.ID, &email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	u.Email = models.EmailAddress(email)
	return &u, nil
}
