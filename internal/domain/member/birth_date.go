package member

import (
	"regexp"
	"strings"
	"time"

	"github.com/loopers/member-api/pkg/apperr"
)

const birthDateLayout = "2006-01-02"

// time.Parse alone accepts unpadded fields ("1997-2-3"), so the textual
// shape is pinned first.
var birthDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// BirthDate is a member's date of birth. Parsing is strict: impossible
// calendar dates and future dates are rejected.
type BirthDate struct {
	value time.Time
}

func NewBirthDate(raw string) (BirthDate, error) {
	if strings.TrimSpace(raw) == "" {
		return BirthDate{}, apperr.BadRequest("birth date is required")
	}
	if !birthDateShape.MatchString(raw) {
		return BirthDate{}, apperr.BadRequest("invalid birth date format (yyyy-MM-dd)")
	}
	parsed, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return BirthDate{}, apperr.Wrap(apperr.KindBadRequest, "invalid birth date format (yyyy-MM-dd)", err)
	}
	if parsed.After(today()) {
		return BirthDate{}, apperr.BadRequest("birth date cannot be in the future")
	}
	return BirthDate{value: parsed}, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (b BirthDate) Value() time.Time { return b.value }

// Formatted returns the yyyy-MM-dd form.
func (b BirthDate) Formatted() string { return b.value.Format(birthDateLayout) }

// PlainDigits returns the date as eight digits (yyyyMMdd).
func (b BirthDate) PlainDigits() string { return b.value.Format("20060102") }
