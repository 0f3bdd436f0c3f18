// Package crypto holds the server's password hashing.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into storable hashes and checks
// login attempts against them. Plain passwords are never stored.
type PasswordHasher interface {
	// Hash returns a salted, self-describing hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] when it does not.
	Compare(hash, password string) error
}
