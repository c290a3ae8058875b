// Package memory provides an in-process member.Repository used by tests
// and the seed command. It mirrors the Postgres adapter's contract,
// including the unique member id constraint.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/pkg/apperr"
)

type MemberRepository struct {
	mu      sync.Mutex
	nextID  int64
	members map[string]*member.Member
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{nextID: 1, members: make(map[string]*member.Member)}
}

func (r *MemberRepository) Save(ctx context.Context, m *member.Member) (*member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := m.MemberID().Value()
	if _, ok := r.members[key]; ok {
		return nil, apperr.Conflict("member id already exists")
	}

	now := time.Now()
	saved, err := member.Rehydrate(
		r.nextID,
		m.MemberID().Value(),
		m.Password().Encoded(),
		m.Name().Value(),
		m.Email().Value(),
		m.BirthDate().Formatted(),
		now,
		now,
	)
	if err != nil {
		return nil, err
	}
	r.nextID++
	r.members[key] = saved
	return saved, nil
}

func (r *MemberRepository) FindByMemberID(ctx context.Context, memberID string) (*member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[memberID]
	if !ok {
		return nil, apperr.NotFound("member not found")
	}
	// Hand out a detached copy: callers mutate their aggregate and commit
	// through Update, exactly as with the Postgres adapter.
	return clone(m)
}

func (r *MemberRepository) ExistsByMemberID(ctx context.Context, memberID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.members[memberID]
	return ok, nil
}

func (r *MemberRepository) Update(ctx context.Context, m *member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := m.MemberID().Value()
	if _, ok := r.members[key]; !ok {
		return apperr.NotFound("member not found")
	}
	stored, err := clone(m)
	if err != nil {
		return err
	}
	r.members[key] = stored
	return nil
}

func clone(m *member.Member) (*member.Member, error) {
	return member.Rehydrate(
		m.ID(),
		m.MemberID().Value(),
		m.Password().Encoded(),
		m.Name().Value(),
		m.Email().Value(),
		m.BirthDate().Formatted(),
		m.CreatedAt(),
		m.UpdatedAt(),
	)
}

var _ member.Repository = (*MemberRepository)(nil)
