package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenCreationFailed:     {http.StatusInternalServerError, app.MsgLoginFailed},
	service.ErrPasswordHashingFailed:   {http.StatusInternalServerError, app.MsgRegistrationFailed},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusUnauthorized, app.MsgInvalidCredentials},
	store.ErrNoteNotFound:       {http.StatusNotFound, app.MsgNoteNotFound},
}

func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status and message mapped from err.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, message, status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
