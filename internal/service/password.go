// Package service implements the business logic of the forum.
package service

import (
	"forumapi/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash abstracts password hashing so tests can swap in a cheap fake.
type PasswordHash interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) error
}

// BcryptHash is the production PasswordHash backed by bcrypt.
type BcryptHash struct {
	Cost int
}

// NewBcryptHash returns a BcryptHash with the default cost.
func NewBcryptHash() *BcryptHash {
	return &BcryptHash{Cost: bcrypt.DefaultCost}
}

// Hash hashes the plain password.
func (b *BcryptHash) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return string(hashed), nil
}

// Compare checks the plain password against the stored hash.
func (b *BcryptHash) Compare(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return models.NewAuthenticationError("kredensial yang Anda masukkan salah")
	}
	return nil
}
