// Package config loads, merges and validates configuration for the note
// client and the note server.
//
// Sources, from lowest to highest priority:
//  1. JSON config file (path from CONFIG or -c / -config)
//  2. Environment variables
//  3. Command-line flags
//
// A value from a higher-priority source replaces a lower one only when it is
// non-zero. [GetClientConfig] and [GetServerConfig] return validated views of
// the merged [StructuredConfig].
package config
