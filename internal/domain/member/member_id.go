package member

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/loopers/member-api/pkg/apperr"
)

const (
	memberIDMinLength = 4
	memberIDMaxLength = 10
)

var memberIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// MemberID is the login identifier a member signs up with.
// Globally unique; the constructor is the only validation gate.
type MemberID struct {
	value string
}

func NewMemberID(raw string) (MemberID, error) {
	if strings.TrimSpace(raw) == "" {
		return MemberID{}, apperr.BadRequest("member id is required")
	}
	if len(raw) < memberIDMinLength || len(raw) > memberIDMaxLength {
		return MemberID{}, apperr.BadRequest(fmt.Sprintf("member id must be %d to %d characters", memberIDMinLength, memberIDMaxLength))
	}
	if !memberIDPattern.MatchString(raw) {
		return MemberID{}, apperr.BadRequest("member id must contain only letters and digits")
	}
	return MemberID{value: raw}, nil
}

func (m MemberID) Value() string  { return m.value }
func (m MemberID) String() string { return m.value }
