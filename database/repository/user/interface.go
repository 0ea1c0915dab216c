// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"fmt"

	"github.com/brenonevs/prs-timemesh/database"
	"github.com/brenonevs/prs-timemesh/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository owns persistence of platform users.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Usernames(ctx context.Context, ids []string) (map[string]string, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &mongoUserRepo{coll: database.DB().Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}
