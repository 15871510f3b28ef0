package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arzan03/musicland/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore persists users in the users collection.
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore returns a UserStore on database.
func NewUserStore(database *mongo.Database) *UserStore {
	return &UserStore{coll: database.Collection(UsersCollection)}
}

// List returns every user.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	return s.find(ctx, bson.M{})
}

// ListByRole returns the users with role.
func (s *UserStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.find(ctx, bson.M{"role": role})
}

func (s *UserStore) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// FindByEmail returns nil without error when no user has the email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Create inserts user unless the email is taken, in which case ErrDuplicate
// is returned and nothing is written.
func (s *UserStore) Create(ctx context.Context, user *models.User) (models.InsertResult, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	res, err := s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.InsertResult{}, ErrDuplicate
	}
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return insertResult(res), nil
}

// SetRole overwrites the role of the user with id.
func (s *UserStore) SetRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("set user role: %w", err)
	}
	return updateResult(res), nil
}

// Delete removes the user with id.
func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}
	return deleteResult(res), nil
}
