package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/francoms3/user-management-service/internal/domain"
	pw "github.com/francoms3/user-management-service/internal/password"
	"github.com/francoms3/user-management-service/internal/repository"
	"github.com/francoms3/user-management-service/internal/validation"
)

// UserService sequences validation, password hashing, and store access.
// Validation and hashing always run before the store is entered, so no lock
// is ever held across them.
type UserService struct {
	repo   repository.UserRepository
	logger *zap.Logger
	tracer trace.Tracer
}

// NewUserService wires dependencies.
func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
		tracer: otel.Tracer("github.com/francoms3/user-management-service/internal/service"),
	}
}

// CreateUser validates the input, hashes the password, and inserts the
// record.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	ctx, span := s.startSpan(ctx, "UserService.CreateUser")
	defer span.End()

	if err := validation.Email(in.Email); err != nil {
		return domain.User{}, err
	}
	if err := validation.Name("first name", in.FirstName); err != nil {
		return domain.User{}, err
	}
	if err := validation.Name("last name", in.LastName); err != nil {
		return domain.User{}, err
	}
	if err := validation.Password(in.Password); err != nil {
		return domain.User{}, err
	}

	hash, err := pw.Hash(in.Password)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, s.classify(err)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	user, err := s.repo.Create(ctx, domain.UserDraft{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsActive:     active,
		PasswordHash: hash,
	})
	if err != nil {
		span.RecordError(err)
		return domain.User{}, s.classify(err)
	}

	s.audit("user.created", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// GetUser returns the record for id.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	ctx, span := s.startSpan(ctx, "UserService.GetUser")
	defer span.End()

	if err := validation.UserID(id); err != nil {
		return domain.User{}, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, s.classify(err)
	}
	return user, nil
}

// GetUserByEmail returns the record owning email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	ctx, span := s.startSpan(ctx, "UserService.GetUserByEmail")
	defer span.End()

	if err := validation.Email(email); err != nil {
		return domain.User{}, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, s.classify(err)
	}
	return user, nil
}

// ListUsers returns a snapshot of all records and the current count.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, int, error) {
	ctx, span := s.startSpan(ctx, "UserService.ListUsers")
	defer span.End()

	users, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, 0, s.classify(err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, 0, s.classify(err)
	}
	return users, total, nil
}

// UpdateUser validates the present fields and applies them as a patch. A new
// password is hashed before the store is entered.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (domain.User, error) {
	ctx, span := s.startSpan(ctx, "UserService.UpdateUser")
	defer span.End()

	if err := validation.UserID(id); err != nil {
		return domain.User{}, err
	}
	if in.Email != nil {
		if err := validation.Email(*in.Email); err != nil {
			return domain.User{}, err
		}
	}
	if in.FirstName != nil {
		if err := validation.Name("first name", *in.FirstName); err != nil {
			return domain.User{}, err
		}
	}
	if in.LastName != nil {
		if err := validation.Name("last name", *in.LastName); err != nil {
			return domain.User{}, err
		}
	}

	patch := domain.UserPatch{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  in.IsActive,
	}
	if in.Password != nil {
		if err := validation.Password(*in.Password); err != nil {
			return domain.User{}, err
		}
		hash, err := pw.Hash(*in.Password)
		if err != nil {
			span.RecordError(err)
			return domain.User{}, s.classify(err)
		}
		patch.PasswordHash = &hash
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, s.classify(err)
	}

	s.audit("user.updated", "user_id", user.ID)
	return user, nil
}

// DeleteUser removes the record. Before deleting it reads the record purely
// as an audit signal for inactive accounts; that read never blocks or fails
// the deletion.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "UserService.DeleteUser")
	defer span.End()

	if err := validation.UserID(id); err != nil {
		return err
	}

	if user, err := s.repo.GetByID(ctx, id); err == nil && !user.IsActive {
		s.log().Warn("deleting inactive user", zap.String("user_id", id))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return s.classify(err)
	}

	s.audit("user.deleted", "user_id", id)
	return nil
}

// classify passes the named domain errors through untouched and wraps
// anything unexpected as ErrInvalidData.
func (s *UserService) classify(err error) error {
	if err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyExists) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidData, err)
}

func (s *UserService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}

func (s *UserService) audit(event string, attrs ...any) {
	logger := s.log()
	if logger == nil {
		return
	}
	fields := make([]zap.Field, 0, len(attrs)/2+2)
	fields = append(fields, zap.String("event", event), zap.Time("timestamp", time.Now().UTC()))
	for i := 0; i+1 < len(attrs); i += 2 {
		key, ok := attrs[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, attrs[i+1]))
	}
	logger.Info("audit", fields...)
}

func (s *UserService) log() *zap.Logger {
	if s != nil && s.logger != nil {
		return s.logger
	}
	return zap.L()
}
