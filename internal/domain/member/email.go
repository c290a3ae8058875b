package member

import (
	"regexp"
	"strings"

	"github.com/loopers/member-api/pkg/apperr"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a member's contact address, normalized to lower case.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, apperr.BadRequest("email is required")
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, apperr.BadRequest("invalid email format")
	}
	return Email{value: normalized}, nil
}

func (e Email) Value() string { return e.value }
