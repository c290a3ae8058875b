package member_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/pkg/apperr"
)

func TestNewMemberID(t *testing.T) {
	t.Run("accepts alphanumeric ids within length bounds", func(t *testing.T) {
		for _, raw := range []string{"user", "user1", "abcd", "a1b2c3d4e9", "ABCD1234"} {
			id, err := member.NewMemberID(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, id.Value())
		}
	})

	t.Run("rejects blank", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			_, err := member.NewMemberID(raw)
			require.Error(t, err, "%q", raw)
			assert.True(t, apperr.IsBadRequest(err))
		}
	})

	t.Run("rejects length outside 4..10", func(t *testing.T) {
		for _, raw := range []string{"abc", "a", "abcdefghijk", "abcdefghijklmnop"} {
			_, err := member.NewMemberID(raw)
			require.Error(t, err, raw)
			assert.True(t, apperr.IsBadRequest(err))
		}
	})

	t.Run("rejects non-alphanumeric characters", func(t *testing.T) {
		for _, raw := range []string{"user!", "us er", "user-1", "유저아이디", "user_1"} {
			_, err := member.NewMemberID(raw)
			require.Error(t, err, raw)
			assert.True(t, apperr.IsBadRequest(err))
		}
	})
}
