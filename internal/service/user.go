package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/market_items/internal/hash"
	"github.com/Skotchmaster/market_items/internal/models"
	"github.com/Skotchmaster/market_items/internal/repo"
	"github.com/Skotchmaster/market_items/internal/transport"
)

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) Create(ctx context.Context, req transport.UserRequest) (int, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return 0, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	user := models.User{Name: req.Name, Email: email, PasswordHash: hashed}
	if err := s.Users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return 0, fmt.Errorf("create user %s: %w", email, ErrConflict)
		}
		return 0, fmt.Errorf("create user %s: %w", email, err)
	}
	return user.ID, nil
}

func (s *UserService) Get(ctx context.Context, id int) (transport.UserResponse, error) {
	user, err := s.Users.GetUserByID(ctx, id)
	if err != nil {
		return transport.UserResponse{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return transport.UserFromModel(*user), nil
}

// Update replaces name and email. The password is rehashed when given and
// kept otherwise. Updating an absent id is a no-op.
func (s *UserService) Update(ctx context.Context, id int, req transport.UserRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	current, err := s.Users.GetUserByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}

	passwordHash := current.PasswordHash
	if req.Password != "" {
		if passwordHash, err = hash.HashPassword(req.Password); err != nil {
			return fmt.Errorf("%w: hash password: %v", ErrInternal, err)
		}
	}

	user := models.User{Name: req.Name, Email: email, PasswordHash: passwordHash}
	if err := s.Users.UpdateUser(ctx, id, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return fmt.Errorf("update user %d: %w", id, ErrConflict)
		}
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.Users.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
