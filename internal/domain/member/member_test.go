package member_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/internal/domain/member/membertest"
)

func newTestMember(t *testing.T) *member.Member {
	t.Helper()
	hasher := membertest.Hasher{}

	mid, err := member.NewMemberID("user1")
	require.NoError(t, err)
	birth := mustBirthDate(t, "1997-01-01")
	pw, err := member.NewPassword("Password1!", birth, hasher)
	require.NoError(t, err)
	name, err := member.NewName("홍길동")
	require.NoError(t, err)
	email, err := member.NewEmail("test@test.com")
	require.NoError(t, err)

	return member.NewMember(mid, pw, name, email, birth)
}

func TestNewMember(t *testing.T) {
	m := newTestMember(t)
	assert.Equal(t, int64(0), m.ID())
	assert.Equal(t, "user1", m.MemberID().Value())
	assert.Equal(t, "홍길동", m.Name().Value())
	assert.Equal(t, "test@test.com", m.Email().Value())
	assert.Equal(t, "1997-01-01", m.BirthDate().Formatted())
}

func TestMember_ChangePassword(t *testing.T) {
	hasher := membertest.Hasher{}

	t.Run("replaces the stored password", func(t *testing.T) {
		m := newTestMember(t)
		require.NoError(t, m.ChangePassword("Password1!", "Password2!", hasher))
		assert.True(t, m.Password().Matches("Password2!", hasher))
		assert.False(t, m.Password().Matches("Password1!", hasher))
	})

	t.Run("keeps the stored password on failure", func(t *testing.T) {
		m := newTestMember(t)
		require.Error(t, m.ChangePassword("Wrong1!pw", "Password2!", hasher))
		assert.True(t, m.Password().Matches("Password1!", hasher))
	})

	t.Run("applies the member's own birth date to the policy", func(t *testing.T) {
		m := newTestMember(t)
		err := m.ChangePassword("Password1!", "Pw!x1997abc", hasher)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1997")
	})
}

func TestRehydrate(t *testing.T) {
	now := time.Now()
	m, err := member.Rehydrate(42, "user1", "enc:Password1!", "홍길동", "test@test.com", "1997-01-01", now, now)
	require.NoError(t, err)

	assert.Equal(t, int64(42), m.ID())
	assert.Equal(t, "user1", m.MemberID().Value())
	assert.Equal(t, "enc:Password1!", m.Password().Encoded())
	assert.Equal(t, now, m.CreatedAt())

	t.Run("fails on corrupt stored values", func(t *testing.T) {
		_, err := member.Rehydrate(42, "u", "enc:x", "홍길동", "test@test.com", "1997-01-01", now, now)
		require.Error(t, err)
	})
}
