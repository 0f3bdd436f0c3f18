package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	_, _ = utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var draft models.NoteDraft
	if err := utils.DecodeJSON(r.Body, &draft); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), userID, draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NoteResponse{Note: note}, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var draft models.NoteDraft
	if err := utils.DecodeJSON(r.Body, &draft); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	note := models.Note{
		ID:       chi.URLParam(r, "id"),
		Title:    draft.Title,
		Content:  draft.Content,
		Category: draft.Category,
	}

	updated, err := h.services.NoteService.Update(r.Context(), userID, note)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NoteResponse{Note: updated}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgNoteDeleted, http.StatusOK)
}

// userIDFromRequest reads the id stored by the auth middleware.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		writeMessage(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
