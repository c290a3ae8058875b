// Package membertest provides deterministic test doubles for the member
// domain ports.
package membertest

// Hasher is a PasswordHasher that prefixes instead of hashing, so tests can
// assert on encoded values without touching bcrypt.
type Hasher struct{}

func (Hasher) Hash(raw string) (string, error) { return "enc:" + raw, nil }

func (Hasher) Matches(raw, encoded string) bool { return encoded == "enc:"+raw }
