// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Note is a server-owned note. ID is assigned by the server.
type Note struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`

	// UpdatedAt is filled by the server repository and is not part of the API.
	UpdatedAt time.Time `json:"-"`
}

// UnmarshalJSON decodes a note and accepts "_id" as an alias for "id".
func (n *Note) UnmarshalJSON(b []byte) error {
	type plain Note
	var aux struct {
		plain
		LegacyID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*n = Note(aux.plain)
	if n.ID == "" {
		n.ID = aux.LegacyID
	}
	return nil
}

// Draft returns the editable part of the note.
func (n Note) Draft() NoteDraft {
	return NoteDraft{Title: n.Title, Content: n.Content, Category: n.Category}
}

// NoteDraft is the client-supplied body of a create or update request.
type NoteDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
