package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/pkg/apperr"
)

// MemberRepository implements member.Repository on Postgres. The UNIQUE
// constraint on member_id is the authoritative uniqueness check; a
// duplicate insert is translated to a conflict error.
type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

func (r *MemberRepository) Save(ctx context.Context, m *member.Member) (*member.Member, error) {
	var (
		id                   int64
		createdAt, updatedAt time.Time
	)
	row := r.pool.QueryRow(ctx, `
		INSERT INTO member (member_id, password, name, email, birth_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, m.MemberID().Value(), m.Password().Encoded(), m.Name().Value(), m.Email().Value(), m.BirthDate().Value())

	if err := row.Scan(&id, &createdAt, &updatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperr.Wrap(apperr.KindConflict, "member id already exists", err)
		}
		return nil, err
	}

	return member.Rehydrate(
		id,
		m.MemberID().Value(),
		m.Password().Encoded(),
		m.Name().Value(),
		m.Email().Value(),
		m.BirthDate().Formatted(),
		createdAt,
		updatedAt,
	)
}

func (r *MemberRepository) FindByMemberID(ctx context.Context, memberID string) (*member.Member, error) {
	var (
		id        int64
		mid       string
		password  string
		name      string
		email     string
		birthDate time.Time
		createdAt time.Time
		updatedAt time.Time
	)

	row := r.pool.QueryRow(ctx, `
		SELECT id, member_id, password, name, email, birth_date, created_at, updated_at
		FROM member
		WHERE member_id = $1
	`, memberID)

	if err := row.Scan(&id, &mid, &password, &name, &email, &birthDate, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, err
	}

	return member.Rehydrate(id, mid, password, name, email, birthDate.Format("2006-01-02"), createdAt, updatedAt)
}

func (r *MemberRepository) ExistsByMemberID(ctx context.Context, memberID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM member WHERE member_id = $1)
	`, memberID).Scan(&exists)
	return exists, err
}

func (r *MemberRepository) Update(ctx context.Context, m *member.Member) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE member
		SET password = $1, updated_at = now()
		WHERE id = $2
	`, m.Password().Encoded(), m.ID())
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("member not found")
	}
	return nil
}

var _ member.Repository = (*MemberRepository)(nil)
