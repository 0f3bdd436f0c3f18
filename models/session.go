package models

import "time"

// Session is the locally persisted authentication state of the client.
// A Session with an empty Token is treated as absent.
type Session struct {
	Token     string
	CreatedAt time.Time
}

// Present reports whether the session carries a token.
func (s Session) Present() bool {
	return s.Token != ""
}
