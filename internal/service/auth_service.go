package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexedwards/argon2id"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/repo"
	"github.com/pulkitchauhan42/TGP/pkg/auth"
	"github.com/pulkitchauhan42/TGP/pkg/config"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

type AuthService interface {
	Signup(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	// Authenticate resolves a bearer token to its user. Every failure,
	// including an unknown user, is reported as domain.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// missingUserHash stands in for the stored hash of an unknown email so that
// both login failures pay the same argon2id cost.
var missingUserHash = sync.OnceValue(func() string {
	h, err := argon2id.CreateHash("no such user", argon2id.DefaultParams)
	if err != nil {
		logger.Error("failed to create placeholder password hash", "error", err)
	}
	return h
})

type authService struct {
	users repo.UserRepository
	cfg   config.AuthConfig
}

func NewAuthService(users repo.UserRepository, cfg config.AuthConfig) AuthService {
	return &authService{users: users, cfg: cfg}
}

func (s *authService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		IsMember:     req.IsMember,
		MemberHours:  req.MemberHours,
	}
	// A concurrent signup for the same email surfaces here as ErrUserExists.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := auth.NewAccessToken(user.Email, s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	logger.InfoContext(ctx, "user registered", "email", user.Email, "is_member", user.IsMember)

	return &domain.SignupResponse{
		Message:  "User registered!",
		Token:    token,
		IsMember: user.IsMember,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		_, _ = argon2id.ComparePasswordAndHash(req.Password, missingUserHash())
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash)
	if err != nil {
		logger.WarnContext(ctx, "stored password hash unreadable", "email", user.Email, "error", err)
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := auth.NewAccessToken(user.Email, s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &domain.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		IsMember:    user.IsMember,
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := auth.Parse(token, s.cfg.JWTSecret)
	if err != nil {
		logger.DebugContext(ctx, "token rejected", "error", err)
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, claims.Email())
	if err != nil {
		return nil, fmt.Errorf("failed to load token subject: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
