// File: services/user/interface.go
package user

import (
	"context"

	"github.com/brenonevs/prs-timemesh/models"

	"github.com/go-redis/redis/v8"

	userRepo "github.com/brenonevs/prs-timemesh/database/repository/user"
)

// AuthResponse carries the issued token together with the user's public details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserService defines registration, authentication, and profile lookup.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (*AuthResponse, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService is the production implementation backed by Mongo and Redis.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Cache *redis.Client
}
