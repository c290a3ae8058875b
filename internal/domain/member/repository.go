package member

import "context"

// Repository is the persistence port for the member aggregate. The store
// must enforce uniqueness of the member id; ExistsByMemberID is only a
// fast-path hint and Save is the authoritative check (a duplicate insert
// surfaces as a conflict error).
type Repository interface {
	// Save inserts a transient member and returns the persisted aggregate
	// with its identity and audit timestamps filled in.
	Save(ctx context.Context, m *Member) (*Member, error)
	// FindByMemberID returns a not-found error when no member exists.
	FindByMemberID(ctx context.Context, memberID string) (*Member, error)
	ExistsByMemberID(ctx context.Context, memberID string) (bool, error)
	// Update persists the current state of an already-saved member.
	Update(ctx context.Context, m *Member) error
}

// PasswordHasher is the secret-hashing port. Production uses bcrypt;
// tests inject a deterministic fake.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Matches(raw, encoded string) bool
}
