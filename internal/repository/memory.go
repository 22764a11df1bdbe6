package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/francoms3/user-management-service/internal/domain"
)

// Compile-time interface assertion.
var _ UserRepository = (*MemoryUserRepo)(nil)

// MemoryUserRepo keeps user records in process memory. A single mutex guards
// the primary map and the email index together so the two never diverge, and
// no public method calls another locking method while holding the lock.
// Records are stored and returned by value, so callers never share memory
// with the store.
type MemoryUserRepo struct {
	mu     sync.Mutex
	users  map[string]domain.User
	emails map[string]string // email -> user id
}

// NewMemoryUserRepo returns an empty store.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users:  make(map[string]domain.User),
		emails: make(map[string]string),
	}
}

// Create inserts a new record with a fresh id and identical create/update
// timestamps. Emails are unique; a collision leaves the store untouched.
func (r *MemoryUserRepo) Create(ctx context.Context, draft domain.UserDraft) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emails[draft.Email]; exists {
		return domain.User{}, domain.ErrAlreadyExists
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.NewString(),
		Email:        draft.Email,
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		IsActive:     draft.IsActive,
		PasswordHash: draft.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.users[user.ID] = user
	r.emails[user.Email] = user.ID
	return user, nil
}

// GetByID returns the record for id.
func (r *MemoryUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

// GetByEmail returns the record owning email. Lookups are case-sensitive.
func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.emails[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return r.users[id], nil
}

// List returns a snapshot of all records. Order is unspecified.
func (r *MemoryUserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

// Update applies only the fields present in patch and refreshes the update
// timestamp. An email move checks uniqueness before either map is touched,
// so a conflict leaves the old index entry intact.
func (r *MemoryUserRepo) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if owner, taken := r.emails[*patch.Email]; taken && owner != id {
			return domain.User{}, domain.ErrAlreadyExists
		}
		delete(r.emails, user.Email)
		r.emails[*patch.Email] = id
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}

	user.UpdatedAt = time.Now().UTC()
	r.users[id] = user
	return user, nil
}

// Delete removes the record from the map and the email index atomically.
func (r *MemoryUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}

	delete(r.users, id)
	delete(r.emails, user.Email)
	return nil
}

// Count returns the current number of records.
func (r *MemoryUserRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users), nil
}
