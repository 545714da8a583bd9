package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/pkg/auth"
	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// CreateItemRequest is the request body for POST /items.
// Price is a pointer so that an explicit zero passes "required".
type CreateItemRequest struct {
	Name  string   `json:"name"  validate:"required,min=1,max=100" example:"Laptop"`
	Price *float64 `json:"price" validate:"required,gte=0"         example:"6000"`
} // @name CreateItemRequest

// CreateItemResponse is returned on successful item creation.
// Only the identifier — the full record is a follow-up GET away.
type CreateItemResponse struct {
	ID uuid.UUID `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name CreateItemResponse

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a new item owned by the authenticated user
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	CreateItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	id, err := h.svc.Item.Create(r.Context(), req.Name, *req.Price, identity.UserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateItemResponse{ID: id})
}
