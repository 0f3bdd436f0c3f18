// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants.
//
// Msg* constants are written into HTTP response bodies by the note server.
// UI* constants are the fixed, user-facing notices shown by the terminal
// client; each client operation category maps to exactly one of them.
package app

// Server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails presence/format validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the email/password pair does
	// not match any user.
	MsgInvalidCredentials = "invalid credentials"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// malformed, expired or signed with another key.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNoUserIDProvided = "no user ID provided"

	// MsgEmailAlreadyExists is returned when signing up with an email that
	// is already registered.
	MsgEmailAlreadyExists = "email already exists"

	// MsgNoteNotFound is returned for an unknown note id or a note owned by
	// another user.
	MsgNoteNotFound = "note not found"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	MsgUserCreated = "user created"
	MsgNoteCreated = "note created"
	MsgNoteUpdated = "note updated"
	MsgNoteDeleted = "note deleted"
)

// Client notices.
const (
	UIRequiredFields   = "All fields are required!"
	UIInvalidEmail     = "Please enter a valid email address"
	UIPasswordTooShort = "Password must be at least 6 characters long"

	UISignupSuccess = "Signup successful!"
	UISignupFailed  = "Something went wrong. Please try again!"

	UILoginSuccess       = "Login successful!"
	UIInvalidCredentials = "Invalid credentials!"
	UILoginFailed        = "Error during login. Please try again!"

	UIFetchFailed   = "Failed to fetch notes!"
	UILogoutSuccess = "Logged out successfully!"

	UINoteAdded    = "Note added successfully!"
	UINoteUpdated  = "Note updated successfully!"
	UISaveFailed   = "Error saving note!"
	UINoteDeleted  = "Note deleted successfully!"
	UIDeleteFailed = "Error deleting note!"

	UISessionExpired = "Session expired. Please log in again."
	UIClipboardCopy  = "Note content copied to clipboard"
	UIClipboardFail  = "Could not access the clipboard"
)
