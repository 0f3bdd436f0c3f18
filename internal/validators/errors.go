package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrRequiredFieldsMissing is returned when any required field is empty.
	ErrRequiredFieldsMissing = errors.New("all fields are required")
	// ErrInvalidEmail is returned when the email does not match [EmailPattern].
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort is returned for passwords shorter than [MinPasswordLength].
	ErrPasswordTooShort = errors.New("password is too short")
	// ErrEmptyNoteID is returned when an update or delete targets no note.
	ErrEmptyNoteID = errors.New("note id is required")
)
