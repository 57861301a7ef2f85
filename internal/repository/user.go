package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) service.UserRepository {
	return &UserRepository{
		collection: db.Collection(usersCollection),
	}
}

// Create вставляет нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", storeError(err))
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	user.ID = id
	return nil
}

// GetByUsername возвращает пользователя по имени
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user %q: %w", username, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", storeError(err))
	}
	return user, nil
}

// UpdateLastLogin фиксирует время последнего входа
func (r *UserRepository) UpdateLastLogin(ctx context.Context, username string, at time.Time) error {
	update := bson.M{"$set": bson.M{"last_login": at}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %q not found for last login update: %w", username, service.ErrNotFound)
	}
	return nil
}
