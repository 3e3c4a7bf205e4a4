package repository

import (
	"context"

	"forumapi/internal/models"

	"gorm.io/gorm"
)

// AuthenticationRepository manages the refresh token allow-list.
type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	VerifyTokenAvailable(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type authenticationRepository struct {
	db *gorm.DB
}

// NewAuthenticationRepository returns a new AuthenticationRepository implementation.
func NewAuthenticationRepository(db *gorm.DB) AuthenticationRepository {
	return &authenticationRepository{db: db}
}

func (r *authenticationRepository) AddToken(ctx context.Context, token string) error {
	auth := models.Authentication{Token: token}
	if err := r.db.WithContext(ctx).Create(&auth).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *authenticationRepository) VerifyTokenAvailable(ctx context.Context, token string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Authentication{}).
		Where("token = ?", token).Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewInvariantError("refresh token tidak ditemukan di database")
	}
	return nil
}

func (r *authenticationRepository) DeleteToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).Delete(&models.Authentication{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
