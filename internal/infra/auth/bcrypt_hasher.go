// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "letmein"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and password strength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var strength config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, strength)
}

func newBcryptHasher(cost int, strength config.PasswordStrengthConfig) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Passwords longer than 72 bytes are rejected by bcrypt itself.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)

	if h.strength.MinLength > 0 && length < h.strength.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"must be at least " + strconv.Itoa(h.strength.MinLength) + " characters long")
	}
	if h.strength.MaxLength > 0 && length > h.strength.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"must be at most " + strconv.Itoa(h.strength.MaxLength) + " characters long")
	}
	if h.strength.RequireLowercase && !hasRune(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	}
	if h.strength.RequireUppercase && !hasRune(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	}
	if h.strength.RequireNumbers && !hasRune(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	}
	if h.strength.RequireSpecial && !hasRune(password, isSpecial) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}
	if containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordStrength.WithDetails("contains forbidden words")
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
