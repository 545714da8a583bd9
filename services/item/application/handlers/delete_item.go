package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/storefront/pkg/auth"
	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item. The deletion is physical: a second delete of the
// same ID returns 404.
//
//	@Summary		Delete item
//	@Description	Removes an item permanently
//	@Tags			items
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	map[string]string
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id, identity.UserID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONMessage(w, http.StatusOK, "item deleted")
}
