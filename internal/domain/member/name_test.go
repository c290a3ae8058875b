package member_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/pkg/apperr"
)

func TestNewName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := member.NewName("  홍길동  ")
		require.NoError(t, err)
		assert.Equal(t, "홍길동", n.Value())
	})

	t.Run("rejects blank", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := member.NewName(raw)
			require.Error(t, err, "%q", raw)
			assert.True(t, apperr.IsBadRequest(err))
		}
	})

	t.Run("accepts exactly 20 characters", func(t *testing.T) {
		n, err := member.NewName(strings.Repeat("가", 20))
		require.NoError(t, err)
		assert.Len(t, []rune(n.Value()), 20)
	})

	t.Run("rejects more than 20 characters", func(t *testing.T) {
		_, err := member.NewName(strings.Repeat("a", 21))
		require.Error(t, err)
		assert.True(t, apperr.IsBadRequest(err))
	})
}

func TestName_Masked(t *testing.T) {
	cases := map[string]string{
		"홍길동":  "홍길*",
		"홍":    "*",
		"John": "Joh*",
		"ab":   "a*",
	}
	for raw, want := range cases {
		n, err := member.NewName(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, n.Masked(), raw)
	}
}
