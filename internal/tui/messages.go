package tui

import "github.com/MKhiriev/go-note-keeper/models"

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload
// is delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page once the request completes.
type LoginResult struct {
	Err   error
	Email string
}

// SignupResult is produced by the signup page once the request completes.
type SignupResult struct {
	Err   error
	Email string
}

// SignupSuccessNotice is delivered to the login page after a successful
// signup.
type SignupSuccessNotice struct {
	Email string
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type notesInvalidatedMsg struct{}

type noteSavedMsg struct {
	created bool
	err     error
}

type noteDeletedMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
