package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/market_items/internal/events"
	"github.com/Skotchmaster/market_items/internal/hash"
	"github.com/Skotchmaster/market_items/internal/models"
	"github.com/Skotchmaster/market_items/internal/repo"
	"github.com/Skotchmaster/market_items/internal/tokens"
	"github.com/Skotchmaster/market_items/internal/transport"
)

type AuthService struct {
	Users  UserStore
	Tokens *tokens.Service
	Events events.Publisher
}

func NewAuthService(users UserStore, tks *tokens.Service, publisher events.Publisher) *AuthService {
	return &AuthService{Users: users, Tokens: tks, Events: publisher}
}

// Register creates the user and returns a token for it. The token is built
// from the row read back by email, not from the request.
func (s *AuthService) Register(ctx context.Context, req transport.UserRequest) (string, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := s.Users.GetUserByEmail(ctx, email); err == nil {
		return "", fmt.Errorf("register %s: %w", email, ErrConflict)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", fmt.Errorf("register %s: %w", email, err)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	user := models.User{Name: req.Name, Email: email, PasswordHash: hashed}
	if err := s.Users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return "", fmt.Errorf("register %s: %w", email, ErrConflict)
		}
		return "", fmt.Errorf("register %s: %w", email, err)
	}

	stored, err := s.Users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: user creation failed: %v", ErrInternal, err)
	}

	token, err := s.Tokens.Issue(stored.Name, stored.Email)
	if err != nil {
		return "", fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	publish(ctx, s.Events, events.TopicUsers, stored.Email, events.Event{Type: events.UserRegistered, Email: stored.Email})
	return token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.Name, user.Email)
	if err != nil {
		return "", fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	publish(ctx, s.Events, events.TopicUsers, user.Email, events.Event{Type: events.UserLoggedIn, Email: user.Email})
	return token, nil
}

// Me returns the account behind a verified principal.
func (s *AuthService) Me(ctx context.Context, email string) (transport.UserResponse, error) {
	user, err := s.Users.GetUserByEmail(ctx, email)
	if err != nil {
		return transport.UserResponse{}, fmt.Errorf("me %s: %w", email, err)
	}
	return transport.UserFromModel(*user), nil
}
