package hash

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errors.New("empty password")
	ErrMalformedHash = errors.New("malformed password hash")
)

// PasswordHasher provides hashing logic to securely store passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// BcryptHasher hashes passwords with bcrypt. Every call generates a new salt.
// Passwords are reduced to a base64 SHA-256 digest first, so inputs longer
// than bcrypt's 72 byte limit are accepted and no byte of them is ignored.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash creates a salted bcrypt hash of the given password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", pkgerrors.Wrap(err, "bcrypt generate")
	}

	return string(hash), nil
}

// Verify compares password with hash. A mismatch is (false, nil); only a hash
// that bcrypt cannot read is an error.
func (h *BcryptHasher) Verify(password string, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case errors.Is(err, bcrypt.ErrHashTooShort):
		return false, ErrMalformedHash
	}

	var versionErr bcrypt.HashVersionTooNewError
	var prefixErr bcrypt.InvalidHashPrefixError
	var costErr bcrypt.InvalidCostError
	if errors.As(err, &versionErr) || errors.As(err, &prefixErr) || errors.As(err, &costErr) {
		return false, ErrMalformedHash
	}

	return false, pkgerrors.Wrap(err, "bcrypt compare")
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
