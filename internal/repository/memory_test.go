package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/francoms3/user-management-service/internal/domain"
	"github.com/francoms3/user-management-service/internal/repository"
)

func draft(email string) domain.UserDraft {
	return domain.UserDraft{
		Email:        email,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		IsActive:     true,
		PasswordHash: "$argon2id$stub",
	}
}

func TestCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	created, err := repo.Create(ctx, draft("ada@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "ada@example.com", created.Email)
	require.True(t, created.IsActive)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, byID)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, created, byEmail)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, total)
}

func TestCreateDuplicateEmailLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	first, err := repo.Create(ctx, draft("ada@example.com"))
	require.NoError(t, err)

	second := draft("ada@example.com")
	second.FirstName = "Imposter"
	_, err = repo.Create(ctx, second)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, total)

	stored, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, first, stored)
}

func TestGetMissingUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	_, err := repo.GetByID(ctx, "550e8400-e29b-41d4-a716-446655440000")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	created, err := repo.Create(ctx, draft("ada@example.com"))
	require.NoError(t, err)

	newName := "Augusta"
	updated, err := repo.Update(ctx, created.ID, domain.UserPatch{FirstName: &newName})
	require.NoError(t, err)

	require.Equal(t, "Augusta", updated.FirstName)
	require.Equal(t, created.Email, updated.Email)
	require.Equal(t, created.LastName, updated.LastName)
	require.Equal(t, created.IsActive, updated.IsActive)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateEmailMovesIndex(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	created, err := repo.Create(ctx, draft("old@example.com"))
	require.NoError(t, err)

	newEmail := "new@example.com"
	updated, err := repo.Update(ctx, created.ID, domain.UserPatch{Email: &newEmail})
	require.NoError(t, err)
	require.Equal(t, newEmail, updated.Email)

	_, err = repo.GetByEmail(ctx, "old@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)

	byEmail, err := repo.GetByEmail(ctx, newEmail)
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)
}

func TestUpdateEmailConflictRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	ada, err := repo.Create(ctx, draft("ada@example.com"))
	require.NoError(t, err)
	grace, err := repo.Create(ctx, draft("grace@example.com"))
	require.NoError(t, err)

	taken := ada.Email
	_, err = repo.Update(ctx, grace.ID, domain.UserPatch{Email: &taken})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	// Both index entries survive the failed move.
	stored, err := repo.GetByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	require.Equal(t, grace, stored)

	owner, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, ada.ID, owner.ID)
}

func TestUpdateEmailToOwnEmailIsNoConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	created, err := repo.Create(ctx, draft("ada@example.com"))
	require.NoError(t, err)

	same := created.Email
	updated, err := repo.Update(ctx, created.ID, domain.UserPatch{Email: &same})
	require.NoError(t, err)
	require.Equal(t, created.Email, updated.Email)
}

func TestDeleteRemovesRecordAndIndex(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	created, err := repo.Create(ctx, draft("ada@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByEmail(ctx, created.Email)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, total)

	// The freed email is available again.
	_, err = repo.Create(ctx, draft("ada@example.com"))
	require.NoError(t, err)
}

func TestListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, draft(fmt.Sprintf("user-%d@example.com", i)))
		require.NoError(t, err)
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	// Mutating the snapshot must not leak into the store.
	users[0].FirstName = "Mutated"
	stored, err := repo.GetByID(ctx, users[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", stored.FirstName)
}

func TestConcurrentCreates(t *testing.T) {
	const n = 64

	ctx := context.Background()
	repo := repository.NewMemoryUserRepo()

	var g errgroup.Group
	for i := 0; i < n; i++ {
		email := fmt.Sprintf("user-%d@example.com", i)
		g.Go(func() error {
			_, err := repo.Create(ctx, draft(email))
			return err
		})
	}
	require.NoError(t, g.Wait())

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, n, total)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, n)

	ids := make(map[string]struct{}, n)
	emails := make(map[string]struct{}, n)
	for _, user := range users {
		ids[user.ID] = struct{}{}
		emails[user.Email] = struct{}{}
	}
	require.Len(t, ids, n)
	require.Len(t, emails, n)
}
