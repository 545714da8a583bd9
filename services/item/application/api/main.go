package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/pkg/auth"
	"github.com/ghuser/storefront/services/item/application/handlers"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
// Reads are public; mutations require a valid bearer token.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.Tokens, a.Logger))
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
}
