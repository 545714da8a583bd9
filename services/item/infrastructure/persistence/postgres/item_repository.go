package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/storefront/pkg/database"
	"github.com/ghuser/storefront/pkg/events"
	itemdomain "github.com/ghuser/storefront/services/item/domain"
	domainevents "github.com/ghuser/storefront/services/item/domain/events"
	"github.com/ghuser/storefront/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus publishes item lifecycle events in the same transaction
// as the row write.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same transaction.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, name, price, created_by, created_at) VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.Name.String(), item.Price.Float64(), item.CreatedBy, item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			event := domainevents.ItemCreatedEvent{
				EventID:    uuid.New(),
				Version:    1,
				ItemID:     item.ID,
				Name:       item.Name.String(),
				Price:      item.Price.Float64(),
				CreatedBy:  item.CreatedBy,
				OccurredAt: item.CreatedAt,
			}
			if err := r.publish(tx, domainevents.TopicItemCreated, event.EventID, event); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, price, created_by, created_at, updated_by, updated_at FROM items WHERE id = $1`,
		id,
	)
	item, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// FindAll retrieves every item in store-defined order.
func (r *ItemRepository) FindAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, price, created_by, created_at, updated_by, updated_at FROM items`,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Update persists changes to an existing Item and publishes an ItemUpdatedEvent
// within the same transaction.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE items SET name = $2, price = $3, updated_by = $4, updated_at = $5 WHERE id = $1`,
			item.ID, item.Name.String(), item.Price.Float64(), item.UpdatedBy, item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		if r.bus != nil {
			event := domainevents.ItemUpdatedEvent{
				EventID:    uuid.New(),
				Version:    1,
				ItemID:     item.ID,
				Name:       item.Name.String(),
				Price:      item.Price.Float64(),
				UpdatedBy:  item.UpdatedBy,
				OccurredAt: time.Now().UTC(),
			}
			if err := r.publish(tx, domainevents.TopicItemUpdated, event.EventID, event); err != nil {
				return fmt.Errorf("publish item updated: %w", err)
			}
		}
		return nil
	})
}

// Delete removes an item by ID and publishes an ItemDeletedEvent within the
// same transaction.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID, deletedBy *uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		if r.bus != nil {
			event := domainevents.ItemDeletedEvent{
				EventID:    uuid.New(),
				Version:    1,
				ItemID:     id,
				DeletedBy:  deletedBy,
				OccurredAt: time.Now().UTC(),
			}
			if err := r.publish(tx, domainevents.TopicItemDeleted, event.EventID, event); err != nil {
				return fmt.Errorf("publish item deleted: %w", err)
			}
		}
		return nil
	})
}

// Exists reports whether an item with the given ID exists.
func (r *ItemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// scanItem maps a row to a domain models.Item. The scan func signature matches
// both *sql.Row.Scan and *sql.Rows.Scan.
func scanItem(scan func(dest ...any) error) (*models.Item, error) {
	var item models.Item
	var name string
	var price float64
	if err := scan(&item.ID, &name, &price, &item.CreatedBy, &item.CreatedAt, &item.UpdatedBy, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	item.Price = models.Price(price)
	return &item, nil
}
