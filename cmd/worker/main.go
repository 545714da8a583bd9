package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/pkg/cache"
	"github.com/ghuser/storefront/pkg/config"
	"github.com/ghuser/storefront/pkg/database"
	"github.com/ghuser/storefront/pkg/events"
	"github.com/ghuser/storefront/pkg/logger"
	"github.com/ghuser/storefront/pkg/telemetry"
	itemEvents "github.com/ghuser/storefront/services/item/domain/events"
	userEvents "github.com/ghuser/storefront/services/user/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	subscriptions := []struct {
		topic   string
		handler func(context.Context, *message.Message) error
	}{
		{userEvents.TopicUserRegistered, handleUserRegistered(a)},
		{itemEvents.TopicItemCreated, handleItemCreated(a)},
		{itemEvents.TopicItemUpdated, handleItemUpdated(a)},
		{itemEvents.TopicItemDeleted, handleItemDeleted(a)},
	}

	topics := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, sub.topic, sub.handler)
		if err != nil {
			return err
		}
		topics = append(topics, sub.topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(sub.topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleUserRegistered returns a handler for user.registered events.
// Writes an audit line for each new account; the payload never carries
// credential material, so logging it is safe.
func handleUserRegistered(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt userEvents.UserRegisteredEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "audit: user registered",
			"event_id", evt.EventID,
			"user_id", evt.UserID,
			"email", evt.Email,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}

// handleItemCreated returns a handler for item.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	itemCache := cache.NewItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "audit: item created",
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"created_by", evt.CreatedBy,
		)

		if err := itemCache.Set(ctx, &cache.CachedItem{
			ID:        evt.ItemID,
			Name:      evt.Name,
			Price:     evt.Price,
			CreatedBy: evt.CreatedBy,
			CreatedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for item.created",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "item_id", evt.ItemID)
		}

		return nil
	}
}

// handleItemUpdated returns a handler for item.updated events.
// The API invalidates the cache entry synchronously on update; here we only audit.
func handleItemUpdated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemUpdatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "audit: item updated",
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"updated_by", evt.UpdatedBy,
		)
		return nil
	}
}

// handleItemDeleted returns a handler for item.deleted events.
// Deletes the cache entry again as a backstop in case the synchronous
// invalidation in the API process raced a concurrent read.
func handleItemDeleted(a *app.Application) func(context.Context, *message.Message) error {
	itemCache := cache.NewItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "audit: item deleted",
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"deleted_by", evt.DeletedBy,
		)

		if err := itemCache.Delete(ctx, evt.ItemID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for item.deleted",
				"item_id", evt.ItemID, "error", err)
		}
		return nil
	}
}
