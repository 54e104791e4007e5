// Package auth registers users, checks their credentials and issues bearer tokens.
package auth

import (
	"context"
	"errors"
	"strings"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"

	"github.com/google/logger"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *postgres.User) error
	GetUser(ctx context.Context, id models.ID) (*postgres.User, error)
	GetUserByEmail(ctx context.Context, email string) (*postgres.User, error)
	GetUserByContact(ctx context.Context, email, phone string) (*postgres.User, error)
	ContactTaken(ctx context.Context, email, phone string) (bool, error)
}

// Session is returned by register and login.
type Session struct {
	User  *postgres.User `json:"user"`
	Token string         `json:"token"`
}

type Service struct {
	users  UserStore
	tokens *TokenService
}

func NewService(users UserStore, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, in models.RegisterInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)
	if email == "" {
		return nil, apperr.NewValidation("Email is required")
	}
	if len(in.Password) < 8 {
		return nil, apperr.NewValidation("Password must be at least 8 characters")
	}

	taken, err := s.users.ContactTaken(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.NewValidation("User with this email/phone already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &postgres.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        &email,
		PasswordHash: string(hash),
	}
	if phone != "" {
		u.Phone = &phone
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	logger.Infof("auth: registered user %s", u.ID)
	return s.session(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NewAuthorization("Invalid email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.NewAuthorization("Invalid email or password")
	}
	return s.session(u)
}

func (s *Service) GetUserInfo(ctx context.Context, id models.ID) (*postgres.User, error) {
	return s.users.GetUser(ctx, id)
}

// GetUserByEmailOrPhone resolves an invitation target. When both are given, the user
// must match both.
func (s *Service) GetUserByEmailOrPhone(ctx context.Context, email, phone string) (*postgres.User, error) {
	return s.users.GetUserByContact(ctx, strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(phone))
}

func (s *Service) session(u *postgres.User) (*Session, error) {
	token, err := s.tokens.Sign(u.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}
