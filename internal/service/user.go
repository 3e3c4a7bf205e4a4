package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"
	"forumapi/internal/validation"

	"github.com/google/uuid"
)

// RegisteredUser is the response shape for a successful registration.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserService handles user registration.
type UserService struct {
	users    repository.UserRepository
	password PasswordHash
	newID    func() string
}

// NewUserService returns a new UserService.
func NewUserService(users repository.UserRepository, password PasswordHash) *UserService {
	return &UserService{
		users:    users,
		password: password,
		newID:    uuid.NewString,
	}
}

// Register validates the payload, checks username availability, hashes the
// password and persists the new user.
func (s *UserService) Register(ctx context.Context, payload map[string]any) (*RegisteredUser, error) {
	entity, err := validation.NewRegisterUser(payload)
	if err != nil {
		return nil, err
	}

	if err := s.users.VerifyUsernameAvailable(ctx, entity.Username); err != nil {
		return nil, err
	}

	hashed, err := s.password.Hash(entity.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       "user-" + s.newID(),
		Username: entity.Username,
		Password: hashed,
		Fullname: entity.Fullname,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	observability.UsersRegistered.Inc()

	return &RegisteredUser{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
	}, nil
}
