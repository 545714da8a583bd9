package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/storefront/pkg/cache"
	itemdomain "github.com/ghuser/storefront/services/item/domain"
	"github.com/ghuser/storefront/services/item/domain/models"
	"github.com/ghuser/storefront/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/storefront/services/item/domain/services"
)

// ItemPatch is a merge-patch over an Item: only non-nil fields overwrite the
// stored record, absent fields keep their prior value.
type ItemPatch struct {
	Name  *string
	Price *float64
}

// ItemService orchestrates item CRUD. Event publishing is handled by the
// repository layer (outbox pattern). Reads by ID are served from the Redis
// cache when available; every mutation invalidates the entry so the cache is
// never authoritative.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Create validates and persists a new Item created by actor. Returns only the
// assigned ID; callers fetch the full record via GetByID when they need it.
func (s *ItemService) Create(ctx context.Context, name string, price float64, actor uuid.UUID) (uuid.UUID, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	itemPrice, err := models.NewPrice(price)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidPrice, err)
	}

	item := models.NewItem(itemName, itemPrice, actor)
	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return uuid.Nil, fmt.Errorf("save item: %w", err)
	}

	return item.ID, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToItem(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache errors fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}

	return item, nil
}

// List returns all items. No pagination — the contract accepts unbounded
// result size; order is store-defined.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update applies a merge-patch to an existing item on behalf of actor and
// returns the post-update record. Returns ErrItemNotFound if no item exists —
// the existence check happens before any mutation.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, patch ItemPatch, actor uuid.UUID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	if patch.Name != nil {
		name, err := models.NewItemName(*patch.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
		}
		if err := domainsvcs.ValidateName(name); err != nil {
			return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
		}
		item.Name = name
	}
	if patch.Price != nil {
		price, err := models.NewPrice(*patch.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidPrice, err)
		}
		item.Price = price
	}

	now := time.Now().UTC()
	item.UpdatedBy = &actor
	item.UpdatedAt = &now

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}

	return item, nil
}

// Delete removes an item by ID on behalf of actor.
// Returns ErrItemNotFound if no matching item exists — a second delete of the
// same ID therefore fails the same way.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return itemdomain.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, id, &actor); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

func cachedToItem(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:        c.ID,
		Name:      models.ItemName(c.Name),
		Price:     models.Price(c.Price),
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedBy: c.UpdatedBy,
		UpdatedAt: c.UpdatedAt,
	}
}

func itemToCached(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:        item.ID,
		Name:      item.Name.String(),
		Price:     item.Price.Float64(),
		CreatedBy: item.CreatedBy,
		CreatedAt: item.CreatedAt,
		UpdatedBy: item.UpdatedBy,
		UpdatedAt: item.UpdatedAt,
	}
}
