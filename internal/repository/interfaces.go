package repository

import (
	"context"

	"github.com/francoms3/user-management-service/internal/domain"
)

// UserRepository exposes persistence for user records. Implementations must
// keep every operation atomic with respect to every other operation.
type UserRepository interface {
	Create(ctx context.Context, draft domain.UserDraft) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
