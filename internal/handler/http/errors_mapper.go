package http

import (
	"errors"
	"net/http"

	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/service"
	"github.com/praneeth827/prajju-new-one/internal/store"
	"github.com/praneeth827/prajju-new-one/internal/utils"
)

// mappedError pins a sentinel error to the HTTP status and the stable
// response message the frontend branches on.
type mappedError struct {
	status  int
	message string
}

var errorResponseMap = map[error]mappedError{
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, "Invalid email or password"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, "Authentication required"},

	store.ErrEmailAlreadyExists: {http.StatusConflict, "User with this email already exists"},
	store.ErrPhoneAlreadyExists: {http.StatusConflict, "User with this phone already exists"},
	store.ErrNoUserWasFound:     {http.StatusNotFound, "User not found"},
	store.ErrNoStudentDetails:   {http.StatusNotFound, "No student details found"},
}

// respondError translates a service or storage error into the failure
// envelope. Validation errors surface their own message with 400; known
// sentinels use the mapped status and message; everything else is a 500
// with the endpoint-specific fallback message, logged with the cause.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		utils.WriteFailure(w, ve.Message, http.StatusBadRequest)
		return
	}

	for target, mapped := range errorResponseMap {
		if errors.Is(err, target) {
			utils.WriteFailure(w, mapped.message, mapped.status)
			return
		}
	}

	logger.FromRequest(r).Err(err).Msg(fallbackMessage)
	utils.WriteFailure(w, fallbackMessage, http.StatusInternalServerError)
}
