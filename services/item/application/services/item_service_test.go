package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/storefront/services/item/domain"
	"github.com/ghuser/storefront/services/item/domain/models"
)

// fakeItemRepo is an in-memory ItemRepository.
type fakeItemRepo struct {
	items map[uuid.UUID]*models.Item

	saveErr   error
	updateErr error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*models.Item)}
}

func (f *fakeItemRepo) Save(_ context.Context, item *models.Item) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemRepo) FindAll(_ context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(f.items))
	for _, item := range f.items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, item *models.Item) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.items[item.ID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id uuid.UUID, _ *uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return itemdomain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func ptr[T any](v T) *T { return &v }

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("valid item returns generated ID", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		id, err := svc.Create(ctx, "Widget", 9.99, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == uuid.Nil {
			t.Fatal("expected non-nil ID")
		}

		stored, err := svc.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get after create: %v", err)
		}
		if stored.Name.String() != "Widget" || stored.Price.Float64() != 9.99 {
			t.Fatalf("stored item mismatch: %+v", stored)
		}
		if stored.CreatedBy == nil || *stored.CreatedBy != actor {
			t.Fatalf("expected CreatedBy %v, got %v", actor, stored.CreatedBy)
		}
	})

	t.Run("empty name returns ErrInvalidItemName", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		_, err := svc.Create(ctx, "", 9.99, actor)
		if !errors.Is(err, itemdomain.ErrInvalidItemName) {
			t.Fatalf("expected ErrInvalidItemName, got %v", err)
		}
	})

	t.Run("negative price returns ErrInvalidPrice", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		_, err := svc.Create(ctx, "Widget", -1, actor)
		if !errors.Is(err, itemdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("whitespace-padded name rejected by domain rules", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		_, err := svc.Create(ctx, " Widget ", 9.99, actor)
		if !errors.Is(err, itemdomain.ErrInvalidItemName) {
			t.Fatalf("expected ErrInvalidItemName, got %v", err)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := newFakeItemRepo()
		repo.saveErr = errors.New("db down")
		svc := NewItemService(repo, nil)

		_, err := svc.Create(ctx, "Widget", 9.99, actor)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestItemService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing item returns ErrItemNotFound", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		_, err := svc.GetByID(ctx, uuid.New())
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("empty store returns empty slice", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		items, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected 0 items, got %d", len(items))
		}
	})

	t.Run("returns all created items", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		for _, name := range []string{"A", "B", "C"} {
			if _, err := svc.Create(ctx, name, 1, actor); err != nil {
				t.Fatalf("create %q: %v", name, err)
			}
		}
		items, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()
	updater := uuid.New()

	create := func(t *testing.T, svc *ItemService) uuid.UUID {
		t.Helper()
		id, err := svc.Create(ctx, "Widget", 9.99, creator)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return id
	}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)
		id := create(t, svc)

		updated, err := svc.Update(ctx, id, ItemPatch{Price: ptr(19.99)}, updater)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name.String() != "Widget" {
			t.Fatalf("name must be preserved, got %q", updated.Name)
		}
		if updated.Price.Float64() != 19.99 {
			t.Fatalf("expected price 19.99, got %v", updated.Price.Float64())
		}
	})

	t.Run("update sets audit fields", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)
		id := create(t, svc)

		updated, err := svc.Update(ctx, id, ItemPatch{Name: ptr("Gadget")}, updater)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.UpdatedBy == nil || *updated.UpdatedBy != updater {
			t.Fatalf("expected UpdatedBy %v, got %v", updater, updated.UpdatedBy)
		}
		if updated.UpdatedAt == nil {
			t.Fatal("expected UpdatedAt to be set")
		}
		if updated.CreatedBy == nil || *updated.CreatedBy != creator {
			t.Fatalf("CreatedBy must be preserved, got %v", updated.CreatedBy)
		}
	})

	t.Run("empty patch still stamps the update", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)
		id := create(t, svc)

		updated, err := svc.Update(ctx, id, ItemPatch{}, updater)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name.String() != "Widget" || updated.Price.Float64() != 9.99 {
			t.Fatalf("fields must be unchanged: %+v", updated)
		}
		if updated.UpdatedAt == nil {
			t.Fatal("expected UpdatedAt to be set")
		}
	})

	t.Run("missing item returns ErrItemNotFound before any mutation", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		_, err := svc.Update(ctx, uuid.New(), ItemPatch{Name: ptr("Gadget")}, updater)
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("invalid patch name returns ErrInvalidItemName and leaves item untouched", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)
		id := create(t, svc)

		_, err := svc.Update(ctx, id, ItemPatch{Name: ptr("")}, updater)
		if !errors.Is(err, itemdomain.ErrInvalidItemName) {
			t.Fatalf("expected ErrInvalidItemName, got %v", err)
		}

		stored, err := svc.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if stored.Name.String() != "Widget" || stored.UpdatedAt != nil {
			t.Fatalf("item must be untouched after failed patch: %+v", stored)
		}
	})

	t.Run("invalid patch price returns ErrInvalidPrice", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)
		id := create(t, svc)

		_, err := svc.Update(ctx, id, ItemPatch{Price: ptr(-5.0)}, updater)
		if !errors.Is(err, itemdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("delete removes item", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		id, err := svc.Create(ctx, "Widget", 9.99, actor)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := svc.Delete(ctx, id, actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.GetByID(ctx, id); !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
		}
	})

	t.Run("second delete of same ID returns ErrItemNotFound", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		id, err := svc.Create(ctx, "Widget", 9.99, actor)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := svc.Delete(ctx, id, actor); err != nil {
			t.Fatalf("first delete: %v", err)
		}
		if err := svc.Delete(ctx, id, actor); !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound on second delete, got %v", err)
		}
	})

	t.Run("missing item returns ErrItemNotFound", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		if err := svc.Delete(ctx, uuid.New(), actor); !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
