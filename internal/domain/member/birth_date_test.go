package member_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/pkg/apperr"
)

func TestNewBirthDate(t *testing.T) {
	t.Run("parses and round-trips yyyy-MM-dd", func(t *testing.T) {
		bd, err := member.NewBirthDate("1997-01-01")
		require.NoError(t, err)
		assert.Equal(t, "1997-01-01", bd.Formatted())
		assert.Equal(t, "19970101", bd.PlainDigits())
	})

	t.Run("accepts today", func(t *testing.T) {
		todayStr := time.Now().UTC().Format("2006-01-02")
		bd, err := member.NewBirthDate(todayStr)
		require.NoError(t, err)
		assert.Equal(t, todayStr, bd.Formatted())
	})

	t.Run("rejects future dates", func(t *testing.T) {
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		_, err := member.NewBirthDate(tomorrow)
		require.Error(t, err)
		assert.True(t, apperr.IsBadRequest(err))
	})

	t.Run("rejects blank", func(t *testing.T) {
		for _, raw := range []string{"", "  "} {
			_, err := member.NewBirthDate(raw)
			require.Error(t, err, "%q", raw)
		}
	})

	t.Run("rejects impossible calendar dates without rollover", func(t *testing.T) {
		for _, raw := range []string{"1997-02-30", "1997-13-01", "1997-00-10", "1997-04-31"} {
			_, err := member.NewBirthDate(raw)
			require.Error(t, err, raw)
			assert.True(t, apperr.IsBadRequest(err), raw)
		}
	})

	t.Run("rejects malformed text", func(t *testing.T) {
		for _, raw := range []string{"1997/01/01", "19970101", "1997-1-1", "97-01-01", "1997-01-01x"} {
			_, err := member.NewBirthDate(raw)
			require.Error(t, err, raw)
		}
	})
}
