package app

import (
	"github.com/ghuser/storefront/pkg/auth"
	"github.com/ghuser/storefront/pkg/cache"
	"github.com/ghuser/storefront/pkg/database"
	"github.com/ghuser/storefront/pkg/events"
	"github.com/ghuser/storefront/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	Tokens   *auth.TokenService // holds the process-wide signing key; nil in worker process
}
