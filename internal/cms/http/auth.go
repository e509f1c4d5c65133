package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/odonlab/cms/internal/cms/service"
	"github.com/odonlab/cms/pkg/httpx"
	"github.com/odonlab/cms/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister godoc
//
//	@Summary		Register a new account
//	@Description	Creates a regular (non-admin) user account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RegisterRequest	true	"username, email, password"
//	@Success		201		{object}	domain.User		"Created account, password hash omitted"
//	@Failure		400		{object}	ErrorResponse	"Malformed body or missing fields"
//	@Failure		409		{object}	ErrorResponse	"Username already registered"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeBadRequest(w, "username, email and password are required")
		return
	}

	user, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "conflict", "Username already registered")
			return
		}
		log.Error("register failed", "err", err)
		writeServerError(w, "Failed to register user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, user)
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges credentials for a short-lived bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"username, password"
//	@Success		200		{object}	TokenResponse	"access_token, token_type"
//	@Failure		400		{object}	ErrorResponse	"Malformed body"
//	@Failure		401		{object}	ErrorResponse	"Incorrect username or password"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteBearerError(w, "Incorrect username or password")
			return
		}
		log.Error("login failed", "err", err)
		writeServerError(w, "Failed to log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleMe godoc
//
//	@Summary		Current account
//	@Description	Returns the account the bearer token resolves to
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.User
//	@Failure		401	{object}	ErrorResponse	"Invalid or missing access token"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		httpx.WriteBearerError(w, "missing bearer token")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}
