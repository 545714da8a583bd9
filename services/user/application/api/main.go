package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/services/user/application/handlers"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
)

// UserRoutes registers authentication endpoints on the provided chi router.
// Both routes are public — they are how a client obtains a token.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(svcs).Execute)
		r.Post("/login", handlers.NewLoginHandler(svcs).Execute)
	})
}
