package service

import (
	"context"
	"strings"

	"go-users-api/internal/core/auth"
	"go-users-api/internal/domain"
	"go-users-api/pkg/utils"
)

// AuthService orchestrates registration and login on top of the user store,
// the password hasher and the token issuer.
type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

type RegisterInput struct {
	Name        string
	LastName    string
	Username    string
	Email       string
	PhotoSource string
	Password    string
}

// Register creates a new user after two independent exact-match uniqueness
// checks. The password is hashed before the record ever exists.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if existing, err := s.users.FindByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:         in.Name,
		LastName:     in.LastName,
		Username:     username,
		Email:        email,
		PhotoSource:  in.PhotoSource,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login resolves the identifier against username or email, verifies the
// password and issues a token for the matched user.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	u, err := s.users.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrNotFound
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return s.jwter.Issue(u.ID)
}

// Me loads the token subject's current record.
func (s *AuthService) Me(ctx context.Context, uid uint) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
