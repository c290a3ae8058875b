package member

import (
	"fmt"
	"strings"

	"github.com/loopers/member-api/pkg/apperr"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 16
	passwordSymbols   = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"
)

// Password holds only the encoded form of a member's password. The raw
// value never outlives construction and is never persisted or logged.
type Password struct {
	value string
}

// NewPassword validates raw against the password policy and encodes it.
func NewPassword(raw string, birthDate BirthDate, hasher PasswordHasher) (Password, error) {
	if err := ValidatePasswordPolicy(raw, birthDate); err != nil {
		return Password{}, err
	}
	encoded, err := hasher.Hash(raw)
	if err != nil {
		return Password{}, apperr.Wrap(apperr.KindInternal, "failed to encode password", err)
	}
	return Password{value: encoded}, nil
}

// PasswordFromEncoded wraps a value that is already encoded. Used only when
// rehydrating a member from storage, never for user input.
func PasswordFromEncoded(encoded string) Password {
	return Password{value: encoded}
}

// ValidatePasswordPolicy enforces length, composition and the birth-digit
// blacklist. Blacklist patterns are checked in a fixed order and the first
// match is reported.
func ValidatePasswordPolicy(raw string, birthDate BirthDate) error {
	// Length counts characters, not bytes; non-ASCII filler is allowed.
	if n := len([]rune(raw)); n < passwordMinLength || n > passwordMaxLength {
		return apperr.BadRequest(fmt.Sprintf("password must be %d to %d characters", passwordMinLength, passwordMaxLength))
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasLetter || !hasDigit || !hasSymbol {
		return apperr.BadRequest("password must contain a letter, a digit, and a symbol")
	}

	plain := birthDate.PlainDigits()
	year := plain[0:4]
	yy := plain[2:4]
	mmdd := plain[4:8]
	for _, pattern := range []string{year, yy, mmdd, yy + mmdd, year + mmdd} {
		if strings.Contains(raw, pattern) {
			return apperr.BadRequest(fmt.Sprintf("password must not contain birth date digits (%s)", pattern))
		}
	}
	return nil
}

// Matches reports whether raw corresponds to the encoded value.
func (p Password) Matches(raw string, hasher PasswordHasher) bool {
	return hasher.Matches(raw, p.value)
}

// Change verifies the current password, validates the new one against
// policy, rejects a no-op change and returns the freshly encoded password.
func (p Password) Change(currentRaw, newRaw string, birthDate BirthDate, hasher PasswordHasher) (Password, error) {
	if !p.Matches(currentRaw, hasher) {
		return Password{}, apperr.BadRequest("current password does not match")
	}
	if err := ValidatePasswordPolicy(newRaw, birthDate); err != nil {
		return Password{}, err
	}
	if p.Matches(newRaw, hasher) {
		return Password{}, apperr.BadRequest("new password must differ from the current password")
	}
	return NewPassword(newRaw, birthDate, hasher)
}

// Encoded exposes the stored form for persistence.
func (p Password) Encoded() string { return p.value }
