package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-record/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-user-record/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-record/pkg/helpers"
	"github.com/oksasatya/go-ddd-user-record/pkg/validation"
)

var (
	ErrInvalidUser   = errors.New("invalid user")
	ErrBatchTooLarge = errors.New("enrolment batch too large")
)

// ValidationError carries per-field messages for a rejected input.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid user: %v", e.Details)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidUser }

type Service struct {
	Repo          repo.UserRepository
	Logger        *logrus.Logger
	MaxEnrolBatch int

	validateOnce sync.Once
	validate     *validator.Validate
}

type registration struct {
	ID   string `json:"id" validate:"required"`
	Role string `json:"role" validate:"userrole"`
}

// StudentEnrolment is one row of a bulk enrolment.
type StudentEnrolment struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func NewService(repo repo.UserRepository, logger *logrus.Logger, maxEnrolBatch int) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Service{
		Repo:          repo,
		Logger:        logger,
		MaxEnrolBatch: maxEnrolBatch,
		validate:      validation.New(),
	}
}

func (s *Service) check(v any) error {
	s.validateOnce.Do(func() {
		if s.validate == nil {
			s.validate = validation.New()
		}
	})
	if err := s.validate.Struct(v); err != nil {
		return &ValidationError{Details: validation.ToDetails(err)}
	}
	return nil
}

// Register stores an already constructed user. The id must be non-empty
// and unused; the email must be unused. Nothing else is checked.
func (s *Service) Register(ctx context.Context, u entity.User) error {
	if u == nil {
		return fmt.Errorf("%w: nil user", ErrInvalidUser)
	}
	if err := s.check(registration{ID: u.ID(), Role: string(u.Role())}); err != nil {
		helpers.LogError(s.Logger, "register rejected", err, entity.LogFields(u))
		return err
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		helpers.LogError(s.Logger, "register failed", err, entity.LogFields(u))
		return fmt.Errorf("register user %s: %w", u.ID(), err)
	}
	helpers.LogInfo(s.Logger, "user registered", entity.LogFields(u))
	return nil
}

// EnrolStudents creates students with generated ids and basic passwords.
// It stops at the first failure and returns the students created so far.
func (s *Service) EnrolStudents(ctx context.Context, rows []StudentEnrolment) ([]*entity.Student, error) {
	if s.MaxEnrolBatch > 0 && len(rows) > s.MaxEnrolBatch {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(rows), s.MaxEnrolBatch)
	}
	out := make([]*entity.Student, 0, len(rows))
	for i, row := range rows {
		if err := s.check(row); err != nil {
			return out, fmt.Errorf("row %d: %w", i, err)
		}
		st := entity.NewEnrolledStudent(row.Email, row.Name)
		if err := s.Register(ctx, st); err != nil {
			return out, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, st)
	}
	if s.Logger != nil {
		s.Logger.WithField("count", len(out)).Info("students enrolled")
	}
	return out, nil
}

// ChangePassword replaces the password of the user with the given id.
func (s *Service) ChangePassword(ctx context.Context, id, newPassword string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		helpers.LogError(s.Logger, "change password failed", err, logrus.Fields{"user_id": id})
		return err
	}
	u.SetPassword(newPassword)
	helpers.LogInfo(s.Logger, "password changed", entity.LogFields(u))
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

// List returns every user of the given role, or everyone when role is empty.
func (s *Service) List(ctx context.Context, role entity.Role) ([]entity.User, error) {
	return s.Repo.List(ctx, role)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		helpers.LogError(s.Logger, "remove failed", err, logrus.Fields{"user_id": id})
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user removed")
	}
	return nil
}
