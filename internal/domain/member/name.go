package member

import (
	"fmt"
	"strings"

	"github.com/loopers/member-api/pkg/apperr"
)

const nameMaxLength = 20

// Name is the member's display name, trimmed on construction.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, apperr.BadRequest("name is required")
	}
	if len([]rune(trimmed)) > nameMaxLength {
		return Name{}, apperr.BadRequest(fmt.Sprintf("name must be %d characters or fewer", nameMaxLength))
	}
	return Name{value: trimmed}, nil
}

func (n Name) Value() string { return n.value }

// Masked hides the last character of the name. A single-character name is
// masked entirely.
func (n Name) Masked() string {
	runes := []rune(n.value)
	if len(runes) == 1 {
		return "*"
	}
	return string(runes[:len(runes)-1]) + "*"
}
