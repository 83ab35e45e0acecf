package http

import (
	"encoding/json"
	"net/http"

	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/utils"
	"github.com/praneeth827/prajju-new-one/models"
)

// userIDFromContext pulls the authenticated user's ID placed in the context
// by the auth middleware. A miss means the route was wired outside the auth
// group, so the request is rejected the same way the middleware would.
func (h *Handler) userIDFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in authenticated request context")
		utils.WriteFailure(w, authRequiredMessage, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func (h *Handler) saveDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	var req models.StudentDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.StudentService.UpsertDetails(ctx, userID, req); err != nil {
		h.respondError(w, r, err, "Server error saving details")
		return
	}

	utils.WriteSuccess(w, "Student details saved", nil, http.StatusOK)
}

func (h *Handler) getDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	details, err := h.services.StudentService.GetDetails(ctx, userID)
	if err != nil {
		h.respondError(w, r, err, "Server error getting details")
		return
	}

	utils.WriteSuccess(w, "", details.WithoutOwner(), http.StatusOK)
}
