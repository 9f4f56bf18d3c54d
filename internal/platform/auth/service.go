package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"

	tokenTTL = 24 * time.Hour
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrAuthFailed    = errors.New("authentication failed")
	ErrInvalidInput  = errors.New("invalid input")
)

// Claims ログイントークンの中身
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	store  UserStore
	secret []byte
	now    func() time.Time
}

func NewService(store UserStore, secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &Service{store: store, secret: []byte(secret), now: time.Now}, nil
}

func (s *Service) Secret() []byte { return s.secret }

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.store.Get(ctx, username)
	if err != nil {
		return "", err
	}
	// 存在しない/無効/パスワード違いは区別しない
	if u == nil || u.IsDisabled {
		return "", ErrAuthFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthFailed
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	return token.SignedString(s.secret)
}

func (s *Service) Register(ctx context.Context, username, password, role string) error {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return ErrInvalidInput
	}
	if role != RoleAdmin && role != RoleStaff {
		return ErrInvalidInput
	}
	exists, err := s.store.Get(ctx, username)
	if err != nil {
		return err
	}
	if exists != nil {
		return ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.Create(ctx, &User{Username: username, PasswordHash: string(hash), Role: role})
}

func (s *Service) Delete(ctx context.Context, username string) error {
	n, err := s.store.Delete(ctx, username)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Rename(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrInvalidInput
	}
	old, err := s.store.Get(ctx, oldName)
	if err != nil {
		return err
	}
	if old == nil {
		return ErrNotFound
	}
	taken, err := s.store.Get(ctx, newName)
	if err != nil {
		return err
	}
	if taken != nil {
		return ErrAlreadyExists
	}

	n, err := s.store.Rename(ctx, oldName, newName)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
