package handlers

import (
	"net/http"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
)

// LoginRequest is the request body for POST /auth/login.
// Only presence is validated here — format checks would leak which part of a
// credential pair was wrong.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required" example:"a@b.com"`
	Password string `json:"password" validate:"required" example:"secret1"`
} // @name LoginRequest

// LoginHandler handles POST /auth/login requests.
type LoginHandler struct {
	svc *appsvcs.Services
}

// NewLoginHandler returns a LoginHandler backed by the given services.
func NewLoginHandler(svc *appsvcs.Services) *LoginHandler {
	return &LoginHandler{svc: svc}
}

// Execute verifies credentials and returns a fresh bearer token.
//
//	@Summary		Login
//	@Description	Exchanges email and password for a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, token, err := h.svc.User.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AuthResponse{
		Message: "logged in",
		Token:   token,
		User:    toUserResponse(user),
	})
}
