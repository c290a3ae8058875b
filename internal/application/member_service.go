package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/pkg/apperr"
)

// Service orchestrates member signup and password changes on top of the
// persistence and hashing ports. Domain errors propagate unchanged; the
// transport layer owns status-code mapping.
type Service struct {
	Repo   member.Repository
	Hasher member.PasswordHasher
	Logger *logrus.Logger
}

func NewService(repo member.Repository, hasher member.PasswordHasher, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Hasher: hasher, Logger: logger}
}

type SignupInput struct {
	MemberID  string
	Password  string
	Name      string
	Email     string
	BirthDate string
}

// Signup registers a new member. The exists check is a fast path; the
// store's unique constraint is authoritative and a losing racer gets the
// same conflict error from Save.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*member.Member, error) {
	memberID, err := member.NewMemberID(in.MemberID)
	if err != nil {
		return nil, err
	}
	birthDate, err := member.NewBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByMemberID(ctx, memberID.Value())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("member id already exists")
	}

	password, err := member.NewPassword(in.Password, birthDate, s.Hasher)
	if err != nil {
		return nil, err
	}
	name, err := member.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := member.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	saved, err := s.Repo.Save(ctx, member.NewMember(memberID, password, name, email, birthDate))
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("member_id", saved.MemberID().Value()).Info("member signed up")
	}
	return saved, nil
}

// ChangePassword reloads the member by id and applies the aggregate's
// password transition. A missing member after authentication indicates an
// inconsistency with storage and surfaces as not found.
func (s *Service) ChangePassword(ctx context.Context, memberID, currentRaw, newRaw string) error {
	m, err := s.Repo.FindByMemberID(ctx, memberID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("member not found")
		}
		return err
	}

	if err := m.ChangePassword(currentRaw, newRaw, s.Hasher); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, m); err != nil {
		return err
	}

	if s.Logger != nil {
		s.Logger.WithField("member_id", memberID).Info("member password changed")
	}
	return nil
}
