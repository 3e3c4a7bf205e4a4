package service

import (
	"context"

	"forumapi/internal/auth"
	"forumapi/internal/models"
	"forumapi/internal/repository"
	"forumapi/internal/validation"
)

// TokenPair is the response shape for a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService handles the login session lifecycle.
type AuthService struct {
	users    repository.UserRepository
	auths    repository.AuthenticationRepository
	password PasswordHash
	tokens   *auth.TokenManager
}

// NewAuthService returns a new AuthService.
func NewAuthService(
	users repository.UserRepository,
	auths repository.AuthenticationRepository,
	password PasswordHash,
	tokens *auth.TokenManager,
) *AuthService {
	return &AuthService{
		users:    users,
		auths:    auths,
		password: password,
		tokens:   tokens,
	}
}

// Login checks the credentials, issues a token pair and registers the refresh
// token in the allow-list.
func (s *AuthService) Login(ctx context.Context, payload map[string]any) (*TokenPair, error) {
	entity, err := validation.NewLoginUser(payload)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, entity.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("username tidak ditemukan")
	}

	if err := s.password.Compare(entity.Password, user.Password); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.CreateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.CreateRefreshToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.auths.AddToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh verifies the refresh token signature and allow-list membership, then
// issues a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, payload map[string]any) (string, error) {
	entity, err := validation.NewRefreshAuth(payload)
	if err != nil {
		return "", err
	}

	if err := s.tokens.VerifyRefreshToken(entity.RefreshToken); err != nil {
		return "", err
	}
	if err := s.auths.VerifyTokenAvailable(ctx, entity.RefreshToken); err != nil {
		return "", err
	}

	id, username, err := s.tokens.DecodeRefreshToken(entity.RefreshToken)
	if err != nil {
		return "", err
	}

	return s.tokens.CreateAccessToken(id, username)
}

// Logout removes the refresh token from the allow-list, revoking the session.
func (s *AuthService) Logout(ctx context.Context, payload map[string]any) error {
	entity, err := validation.NewDeleteAuth(payload)
	if err != nil {
		return err
	}

	if err := s.auths.VerifyTokenAvailable(ctx, entity.RefreshToken); err != nil {
		return err
	}

	return s.auths.DeleteToken(ctx, entity.RefreshToken)
}
