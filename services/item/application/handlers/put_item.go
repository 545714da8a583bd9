package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/storefront/pkg/auth"
	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// UpdateItemRequest is the request body for PUT /items/{id}. Both fields are
// optional merge-patch members: only keys present in the body overwrite the
// stored record.
type UpdateItemRequest struct {
	Name  *string  `json:"name,omitempty"  validate:"omitempty,min=1,max=100" example:"Laptop Pro"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,gte=0"         example:"6500"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute merge-patches an existing item and returns the post-update record.
//
//	@Summary		Update item
//	@Description	Applies a partial update; absent fields keep their prior value
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Fields to update"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, appsvcs.ItemPatch{
		Name:  req.Name,
		Price: req.Price,
	}, identity.UserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
