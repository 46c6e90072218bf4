package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-users-api/internal/core/auth"
	"go-users-api/internal/domain"
	"go-users-api/internal/repotest"
	"go-users-api/pkg/utils"
)

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "users-api-test", TTL: time.Hour}
}

func anaInput() RegisterInput {
	return RegisterInput{
		Name:     "Ana",
		LastName: "Lopez",
		Username: "ana",
		Email:    "a@x.com",
		Password: "p1",
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(repotest.NewUserRepo(), testJWTer())
	u, err := svc.Register(context.Background(), anaInput())
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "p1", u.PasswordHash)
	assert.True(t, utils.CheckPassword("p1", u.PasswordHash))
	assert.Nil(t, u.StateID)
}

func TestRegister_UsernameTaken(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(repotest.NewUserRepo(), testJWTer())
	_, err := svc.Register(context.Background(), anaInput())
	require.NoError(t, err)

	in := anaInput()
	in.Email = "other@x.com"
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Parallel()

	repo := repotest.NewUserRepo()
	svc := NewAuthService(repo, testJWTer())
	_, err := svc.Register(context.Background(), anaInput())
	require.NoError(t, err)

	in := anaInput()
	in.Username = "ana2"
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	// Exactly one record stored.
	_, total, err := repo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestLogin_ByUsernameAndEmail(t *testing.T) {
	t.Parallel()

	j := testJWTer()
	svc := NewAuthService(repotest.NewUserRepo(), j)
	u, err := svc.Register(context.Background(), anaInput())
	require.NoError(t, err)

	for _, identifier := range []string{"ana", "a@x.com"} {
		tok, err := svc.Login(context.Background(), identifier, "p1")
		require.NoError(t, err, "identifier %q", identifier)

		uid, err := j.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, u.ID, uid)
	}
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(repotest.NewUserRepo(), testJWTer())
	_, err := svc.Login(context.Background(), "nobody", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(repotest.NewUserRepo(), testJWTer())
	_, err := svc.Register(context.Background(), anaInput())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ana", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(repotest.NewUserRepo(), testJWTer())
	u, err := svc.Register(context.Background(), anaInput())
	require.NoError(t, err)

	got, err := svc.Me(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)

	_, err = svc.Me(context.Background(), u.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
