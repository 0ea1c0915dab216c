// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brenonevs/prs-timemesh/config"
	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Register creates a new user, issues a token, and stores its hash.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	if existing, err := s.Repo.GetByUsername(ctx, username); err != nil {
		utils.GetLogger().Error("Failed to check for existing username", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	} else if existing != nil {
		return nil, fmt.Errorf("a user with this username already exists")
	}
	if existing, err := s.Repo.GetByEmail(ctx, req.Email); err != nil {
		utils.GetLogger().Error("Failed to check for existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	} else if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	rec := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, rec)
}

// Authenticate verifies credentials and rotates the stored token hash.
func (s *DefaultUserService) Authenticate(ctx context.Context, req models.LoginRequest) (*AuthResponse, error) {
	rec, err := s.Repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	return s.issueToken(ctx, *rec)
}

// Me returns the user's own profile.
func (s *DefaultUserService) Me(ctx context.Context, userID string) (*models.User, error) {
	rec, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("user not found")
	}
	return rec, nil
}

// issueToken generates a JWT, persists its hash, and primes the auth cache.
func (s *DefaultUserService) issueToken(ctx context.Context, rec models.User) (*AuthResponse, error) {
	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	token, err := utils.GenerateToken(rec.ID, rec.Username, ttl)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, rec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if s.Cache != nil {
		cacheKey := utils.AuthCachePrefix + rec.ID
		if err := s.Cache.Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to prime auth cache", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:       rec.ID,
		Token:    token,
		Username: rec.Username,
		Email:    rec.Email,
	}, nil
}
