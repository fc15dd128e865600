package services

import (
	"crypto/subtle"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminSecret is the development admin password.
const DefaultAdminSecret = "admin123"

// ════════════════════════════════════════════════════════════
// Authenticators (plugged into store.Store via store.WithAuthenticator)
// ════════════════════════════════════════════════════════════

// SharedSecretAuthenticator accepts exactly one case-sensitive secret.
type SharedSecretAuthenticator struct {
	secret []byte
}

func NewSharedSecretAuthenticator(secret string) *SharedSecretAuthenticator {
	return &SharedSecretAuthenticator{secret: []byte(secret)}
}

func (a *SharedSecretAuthenticator) Verify(credential string) bool {
	if len(a.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), a.secret) == 1
}

// BcryptAuthenticator accepts the password matching a bcrypt hash.
type BcryptAuthenticator struct {
	hash []byte
}

// NewBcryptAuthenticator checks that hash is a usable bcrypt hash.
func NewBcryptAuthenticator(hash string) (*BcryptAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, errors.New("ADMIN_PASSWORD_HASH is not a bcrypt hash")
	}
	return &BcryptAuthenticator{hash: []byte(hash)}, nil
}

func (a *BcryptAuthenticator) Verify(credential string) bool {
	return VerifyPassword(string(a.hash), credential)
}

// Authenticator is the credential check shared by the store and the CLI.
type Authenticator interface {
	Verify(credential string) bool
}

// NewAdminAuthenticator prefers a bcrypt hash and falls back to the shared secret.
func NewAdminAuthenticator(passwordHash, password string) (Authenticator, error) {
	if passwordHash != "" {
		return NewBcryptAuthenticator(passwordHash)
	}
	if password == "" {
		password = DefaultAdminSecret
	}
	if password == DefaultAdminSecret {
		log.Println("⚠️  Using the default admin password, set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	return NewSharedSecretAuthenticator(password), nil
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt (default cost)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func ValidatePassword(password string) bool {
	return len(password) >= 8
}
