package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
	"github.com/ghuser/storefront/services/user/domain/models"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=254" example:"a@b.com"`
	Password string `json:"password" validate:"required,min=6,max=72"  example:"secret1"`
} // @name RegisterRequest

// UserResponse is the public view of a user — never includes the password hash.
type UserResponse struct {
	ID    uuid.UUID `json:"id"    example:"550e8400-e29b-41d4-a716-446655440000"`
	Email string    `json:"email" example:"a@b.com"`
} // @name UserResponse

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	Message string       `json:"message" example:"registered"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
} // @name AuthResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"email already registered"`
} // @name AuthErrorResponse

// RegisterHandler handles POST /auth/register requests.
type RegisterHandler struct {
	svc *appsvcs.Services
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Execute registers a new user and issues a token for the fresh identity.
//
//	@Summary		Register
//	@Description	Creates a user account and returns a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, token, err := h.svc.User.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, AuthResponse{
		Message: "registered",
		Token:   token,
		User:    toUserResponse(user),
	})
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email.String(),
	}
}
