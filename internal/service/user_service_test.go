package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-users-api/internal/domain"
	"go-users-api/internal/repotest"
	"go-users-api/pkg/utils"
)

func seedUser(t *testing.T, repo *repotest.UserRepo) *domain.User {
	t.Helper()
	svc := NewUserService(repo)
	u, err := svc.Create(context.Background(), &domain.User{
		Name:     "Ana",
		LastName: "Lopez",
		Username: "ana",
		Email:    "a@x.com",
	}, "p1")
	require.NoError(t, err)
	return u
}

func TestUserCreate_HashesPassword(t *testing.T) {
	t.Parallel()

	u := seedUser(t, repotest.NewUserRepo())
	assert.NotEqual(t, "p1", u.PasswordHash)
	assert.True(t, utils.CheckPassword("p1", u.PasswordHash))
}

func TestUserGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repotest.NewUserRepo())
	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUpdate_FullReplace(t *testing.T) {
	t.Parallel()

	repo := repotest.NewUserRepo()
	u := seedUser(t, repo)
	svc := NewUserService(repo)

	next := &domain.User{
		Name:     "Ana Maria",
		LastName: "Lopez",
		Username: "ana",
		Email:    "a@x.com",
		Address:  "Elm St 5",
	}
	got, err := svc.Update(context.Background(), u.ID, next, "")
	require.NoError(t, err)

	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Ana Maria", got.Name)
	// No password in the replace body: the stored hash survives.
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
	assert.True(t, utils.CheckPassword("p1", got.PasswordHash))
}

func TestUserUpdate_RehashesNewPassword(t *testing.T) {
	t.Parallel()

	repo := repotest.NewUserRepo()
	u := seedUser(t, repo)
	svc := NewUserService(repo)

	next := &domain.User{Name: "Ana", LastName: "Lopez", Username: "ana", Email: "a@x.com"}
	got, err := svc.Update(context.Background(), u.ID, next, "p2")
	require.NoError(t, err)

	assert.NotEqual(t, "p2", got.PasswordHash)
	assert.True(t, utils.CheckPassword("p2", got.PasswordHash))
	assert.False(t, utils.CheckPassword("p1", got.PasswordHash))
}

func TestUserUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repotest.NewUserRepo())
	_, err := svc.Update(context.Background(), 42, &domain.User{}, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserDelete(t *testing.T) {
	t.Parallel()

	repo := repotest.NewUserRepo()
	u := seedUser(t, repo)
	svc := NewUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), u.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), u.ID), domain.ErrNotFound)

	_, err := svc.Get(context.Background(), u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateService_ListAndCreate(t *testing.T) {
	t.Parallel()

	// nil cache: reads go straight to the store.
	svc := NewStateService(repotest.NewStateRepo(), nil)

	states, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, states)

	st, err := svc.Create(context.Background(), "Jalisco")
	require.NoError(t, err)
	assert.NotZero(t, st.ID)

	states, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "Jalisco", states[0].Name)
}
