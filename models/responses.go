package models

// LoginResponse is the body of a successful POST /api/user/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// NotesResponse is the body of GET /api/note.
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// NoteResponse wraps a single note returned by POST and PUT /api/note.
type NoteResponse struct {
	Note Note `json:"note"`
}

// MessageResponse carries a human readable status or error message.
type MessageResponse struct {
	Message string `json:"message"`
}
