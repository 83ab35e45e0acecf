package http

import (
	"net/http"

	"github.com/praneeth827/prajju-new-one/internal/advisor"
	"github.com/praneeth827/prajju-new-one/internal/utils"
	"github.com/praneeth827/prajju-new-one/models"
)

// detailsDerivation serves the three derivation endpoints: each one loads
// the caller's record and applies a pure function to it.
func (h *Handler) detailsDerivation(w http.ResponseWriter, r *http.Request, fallbackMessage string, derive func(models.StudentDetails) any) {
	ctx := r.Context()

	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	details, err := h.services.StudentService.GetDetails(ctx, userID)
	if err != nil {
		h.respondError(w, r, err, fallbackMessage)
		return
	}

	utils.WriteSuccess(w, "", derive(details), http.StatusOK)
}

func (h *Handler) eligibility(w http.ResponseWriter, r *http.Request) {
	h.detailsDerivation(w, r, "Server error checking eligibility", func(d models.StudentDetails) any {
		return advisor.ComputeEligibility(d)
	})
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	h.detailsDerivation(w, r, "Server error getting recommendations", func(d models.StudentDetails) any {
		return advisor.BuildRecommendations(d)
	})
}

func (h *Handler) performance(w http.ResponseWriter, r *http.Request) {
	h.detailsDerivation(w, r, "Server error analyzing performance", func(d models.StudentDetails) any {
		return advisor.AnalyzePerformance(d)
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	report, err := h.services.ReportService.BuildReport(ctx, userID)
	if err != nil {
		h.respondError(w, r, err, "Server error generating report")
		return
	}

	utils.WriteSuccess(w, "", report, http.StatusOK)
}
