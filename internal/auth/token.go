// Package auth issues and verifies the access/refresh token pair.
package auth

import (
	"fmt"
	"time"

	"forumapi/internal/config"
	"forumapi/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager creates and verifies JWTs for the token pair scheme. Access
// tokens carry an expiry; refresh tokens do not and are revoked by removing
// them from the server-side allow-list.
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
}

// NewTokenManager builds a TokenManager from the runtime configuration.
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		accessKey:  []byte(cfg.AccessTokenKey),
		refreshKey: []byte(cfg.RefreshTokenKey),
		accessTTL:  time.Duration(cfg.AccessTokenAge) * time.Second,
	}
}

// CreateAccessToken signs a short-lived access token for the user.
func (m *TokenManager) CreateAccessToken(id, username string) (string, error) {
	claims := jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      time.Now().Add(m.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.accessKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// CreateRefreshToken signs a refresh token for the user. Lifetime is governed
// by the allow-list, not by an exp claim.
func (m *TokenManager) CreateRefreshToken(id, username string) (string, error) {
	claims := jwt.MapClaims{
		"id":       id,
		"username": username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.refreshKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken validates the access token signature and expiry and
// returns the user id and username claims.
func (m *TokenManager) VerifyAccessToken(tokenString string) (string, string, error) {
	claims, err := m.parse(tokenString, m.accessKey)
	if err != nil {
		return "", "", err
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" {
		return "", "", models.NewAuthenticationError("Missing authentication")
	}
	return id, username, nil
}

// VerifyRefreshToken validates the refresh token signature.
func (m *TokenManager) VerifyRefreshToken(tokenString string) error {
	if _, err := m.parse(tokenString, m.refreshKey); err != nil {
		return models.NewInvariantError("refresh token tidak valid")
	}
	return nil
}

// DecodeRefreshToken returns the user id and username carried by the refresh
// token. The token must already be verified.
func (m *TokenManager) DecodeRefreshToken(tokenString string) (string, string, error) {
	claims, err := m.parse(tokenString, m.refreshKey)
	if err != nil {
		return "", "", models.NewInvariantError("refresh token tidak valid")
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	return id, username, nil
}

func (m *TokenManager) parse(tokenString string, key []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
