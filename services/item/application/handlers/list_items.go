package handlers

import (
	"net/http"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists all items.
//
//	@Summary		List items
//	@Description	Returns all items in store-defined order
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
