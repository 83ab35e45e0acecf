package http

import (
	"net/http"

	"github.com/praneeth827/prajju-new-one/internal/utils"
	"github.com/praneeth827/prajju-new-one/models"
)

// health is the unauthenticated liveness probe at the service root.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Success: true,
		Message: "Backend is running",
		Status:  "healthy",
	}, http.StatusOK)
}
