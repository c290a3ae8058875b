package member

import "time"

// Member is the aggregate root of the member domain. Every field is a
// self-validated value object, so a Member can never hold invalid state.
// The only mutation after signup is a password change.
type Member struct {
	id        int64
	memberID  MemberID
	password  Password
	name      Name
	email     Email
	birthDate BirthDate
	createdAt time.Time
	updatedAt time.Time
}

// NewMember composes a transient (not yet persisted) member. The password
// is assumed to have been produced with this member's birth date.
func NewMember(memberID MemberID, password Password, name Name, email Email, birthDate BirthDate) *Member {
	return &Member{
		memberID:  memberID,
		password:  password,
		name:      name,
		email:     email,
		birthDate: birthDate,
	}
}

// Rehydrate rebuilds a persisted member from stored column values.
// birthDate is the stored yyyy-MM-dd string.
func Rehydrate(id int64, memberID, encodedPassword, name, email, birthDate string, createdAt, updatedAt time.Time) (*Member, error) {
	mid, err := NewMemberID(memberID)
	if err != nil {
		return nil, err
	}
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	bd, err := NewBirthDate(birthDate)
	if err != nil {
		return nil, err
	}
	return &Member{
		id:        id,
		memberID:  mid,
		password:  PasswordFromEncoded(encodedPassword),
		name:      n,
		email:     e,
		birthDate: bd,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ChangePassword is the aggregate's single mutator. It delegates the
// verify/policy/no-op checks to Password.Change using this member's own
// birth date.
func (m *Member) ChangePassword(currentRaw, newRaw string, hasher PasswordHasher) error {
	changed, err := m.password.Change(currentRaw, newRaw, m.birthDate, hasher)
	if err != nil {
		return err
	}
	m.password = changed
	return nil
}

func (m *Member) ID() int64            { return m.id }
func (m *Member) MemberID() MemberID   { return m.memberID }
func (m *Member) Password() Password   { return m.password }
func (m *Member) Name() Name           { return m.name }
func (m *Member) Email() Email         { return m.email }
func (m *Member) BirthDate() BirthDate { return m.birthDate }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
func (m *Member) UpdatedAt() time.Time { return m.updatedAt }
