package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/utils"
	"github.com/praneeth827/prajju-new-one/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "Server error during registration")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.respondError(w, r, err, "Server error during registration")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteSuccess(w, "Registration successful", nil, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "Server error during login")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.respondError(w, r, err, "Server error during login")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteSuccess(w, "Login successful", nil, http.StatusOK)
}

// logout revokes the session token that authenticated this request. It is
// idempotent: a second logout with the same token fails auth upstream, and
// revoking is always reported as a success.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token, ok := utils.GetTokenFromContext(ctx); ok {
		h.services.AuthService.InvalidateToken(ctx, token)
	}

	utils.WriteSuccess(w, "Logged out", nil, http.StatusOK)
}
