package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field names accepted by [NoteKeeperValidator].
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldEmailFormat    = "email format"
	FieldPasswordLength = "password length"

	FieldNoteID   = "id"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldCategory = "category"
)

// MinPasswordLength is the shortest password accepted at sign-up, in
// UTF-16 code units.
const MinPasswordLength = 6

// EmailPattern is the address format accepted at sign-up.
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// Field sets for the credential flows. Presence checks come first so an
// empty form reports [ErrRequiredFieldsMissing] rather than a format error.
var (
	SignupFields = []string{FieldName, FieldEmail, FieldPassword, FieldEmailFormat, FieldPasswordLength}
	LoginFields  = []string{FieldEmail, FieldPassword}
	DraftFields  = []string{FieldTitle, FieldContent, FieldCategory}
)

// NoteKeeperValidator validates [models.Credentials], [models.NoteDraft]
// and [models.Note].
type NoteKeeperValidator struct{}

func NewNoteKeeperValidator() Validator {
	return &NoteKeeperValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields,
// credentials get [SignupFields], drafts get [DraftFields] and notes get
// the id plus [DraftFields].
func (v *NoteKeeperValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.NoteDraft:
		return v.validateNote(models.Note{Title: value.Title, Content: value.Content, Category: value.Category}, withDefault(fields, DraftFields)...)
	case *models.NoteDraft:
		return v.Validate(ctx, *value, fields...)

	case models.Note:
		return v.validateNote(value, withDefault(fields, append([]string{FieldNoteID}, DraftFields...))...)
	case *models.Note:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteKeeperValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	for _, f := range withDefault(fields, SignupFields) {
		switch f {
		case FieldName:
			if creds.Name == "" {
				return ErrRequiredFieldsMissing
			}
		case FieldEmail:
			if creds.Email == "" {
				return ErrRequiredFieldsMissing
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrRequiredFieldsMissing
			}
		case FieldEmailFormat:
			if !EmailPattern.MatchString(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPasswordLength:
			if len(utf16.Encode([]rune(creds.Password))) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteKeeperValidator) validateNote(note models.Note, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if note.ID == "" {
				return ErrEmptyNoteID
			}
		case FieldTitle:
			if strings.TrimSpace(note.Title) == "" {
				return ErrRequiredFieldsMissing
			}
		case FieldContent:
			if strings.TrimSpace(note.Content) == "" {
				return ErrRequiredFieldsMissing
			}
		case FieldCategory:
			if strings.TrimSpace(note.Category) == "" {
				return ErrRequiredFieldsMissing
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func withDefault(fields, def []string) []string {
	if len(fields) == 0 {
		return def
	}
	return fields
}
