package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Register implements AuthHandler.
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registered successfully", result)
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh implements AuthHandler.
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Refresh(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements AuthHandler. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists for API symmetry.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	response.SuccessWithMessage(w, "Logged out", nil)
}

// LoginWithGoogle implements AuthHandler.
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	redirectURL, err := h.authService.LoginWithGoogle(r.Context(), r.UserAgent())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	result, err := h.authService.OAuthCallbackGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Me implements AuthHandler.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
