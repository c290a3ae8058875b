package member_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/internal/domain/member/membertest"
	"github.com/loopers/member-api/pkg/apperr"
)

func mustBirthDate(t *testing.T, raw string) member.BirthDate {
	t.Helper()
	bd, err := member.NewBirthDate(raw)
	require.NoError(t, err)
	return bd
}

func TestValidatePasswordPolicy(t *testing.T) {
	birth := mustBirthDate(t, "1997-01-01")

	t.Run("accepts a compliant password", func(t *testing.T) {
		for _, raw := range []string{"Password1!", "abc123!@", "Zz9?Zz9?Zz9?Zz9?"} {
			assert.NoError(t, member.ValidatePasswordPolicy(raw, birth), raw)
		}
	})

	t.Run("rejects length outside 8..16", func(t *testing.T) {
		for _, raw := range []string{"", "Pw1!", "Abcdef1", "Abcdefghijklmn1!x"} {
			err := member.ValidatePasswordPolicy(raw, birth)
			require.Error(t, err, "%q", raw)
			assert.True(t, apperr.IsBadRequest(err))
		}
	})

	t.Run("measures length in characters, not bytes", func(t *testing.T) {
		// 10 characters but 22 bytes.
		assert.NoError(t, member.ValidatePasswordPolicy("한글한글한글Ab1!", birth))
		// 7 characters even though the byte count is within bounds.
		err := member.ValidatePasswordPolicy("한글한Ab1!", birth)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "8 to 16")
	})

	t.Run("rejects missing character classes", func(t *testing.T) {
		for _, raw := range []string{
			"Passwords!", // no digit
			"12345678!",  // no letter
			"Password123", // no symbol
		} {
			err := member.ValidatePasswordPolicy(raw, birth)
			require.Error(t, err, raw)
			assert.Contains(t, err.Error(), "letter")
		}
	})

	t.Run("rejects each birth-digit pattern", func(t *testing.T) {
		cases := map[string]string{
			"Pw!x1997ab":  "1997", // four-digit year
			"Pwd!97abcd":  "97",   // two-digit year
			"Pw!x0101ab":  "0101", // month and day
			"Pw!970101x":  "97",   // yy+mmdd, yy reported first
			"19970101!a":  "1997", // full date, year reported first
		}
		for raw, pattern := range cases {
			err := member.ValidatePasswordPolicy(raw, birth)
			require.Error(t, err, raw)
			assert.Contains(t, err.Error(), "("+pattern+")", raw)
		}
	})
}

func TestPassword_Matches(t *testing.T) {
	hasher := membertest.Hasher{}
	birth := mustBirthDate(t, "1997-01-01")

	pw, err := member.NewPassword("Password1!", birth, hasher)
	require.NoError(t, err)
	assert.Equal(t, "enc:Password1!", pw.Encoded())
	assert.True(t, pw.Matches("Password1!", hasher))
	assert.False(t, pw.Matches("Password2!", hasher))
}

func TestPasswordFromEncoded(t *testing.T) {
	hasher := membertest.Hasher{}
	pw := member.PasswordFromEncoded("enc:Stored9!")
	assert.Equal(t, "enc:Stored9!", pw.Encoded())
	assert.True(t, pw.Matches("Stored9!", hasher))
}

func TestPassword_Change(t *testing.T) {
	hasher := membertest.Hasher{}
	birth := mustBirthDate(t, "1997-01-01")

	newPassword := func(t *testing.T) member.Password {
		t.Helper()
		pw, err := member.NewPassword("Password1!", birth, hasher)
		require.NoError(t, err)
		return pw
	}

	t.Run("rejects wrong current password", func(t *testing.T) {
		_, err := newPassword(t).Change("Wrong1!pw", "Password2!", birth, hasher)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "current password")
	})

	t.Run("rejects policy-violating new password", func(t *testing.T) {
		_, err := newPassword(t).Change("Password1!", "short", birth, hasher)
		require.Error(t, err)
		assert.True(t, apperr.IsBadRequest(err))
	})

	t.Run("rejects unchanged password even though it satisfies policy", func(t *testing.T) {
		_, err := newPassword(t).Change("Password1!", "Password1!", birth, hasher)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "differ")
	})

	t.Run("encodes the new password on success", func(t *testing.T) {
		changed, err := newPassword(t).Change("Password1!", "Password2!", birth, hasher)
		require.NoError(t, err)
		assert.Equal(t, "enc:Password2!", changed.Encoded())
		assert.True(t, changed.Matches("Password2!", hasher))
		assert.False(t, changed.Matches("Password1!", hasher))
	})
}
