// Package session generates opaque conversation identifiers. A session id
// carries no server-side state and is not a security token. It only needs
// to be unique enough that concurrent visitors never collide.
package session

import "github.com/oklog/ulid/v2"

// New returns a fresh 26-character ULID string. Safe for concurrent use.
func New() string {
	return ulid.Make().String()
}

// Valid reports whether s parses as a ULID. Callers may still accept
// arbitrary non-empty ids supplied by clients; this is only used for
// diagnostics.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
