package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/musicland/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClassStore persists classes in the class collection.
type ClassStore struct {
	coll *mongo.Collection
}

// NewClassStore returns a ClassStore on database.
func NewClassStore(database *mongo.Database) *ClassStore {
	return &ClassStore{coll: database.Collection(ClassesCollection)}
}

// List returns the classes matching filter.
func (s *ClassStore) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	cursor, err := s.coll.Find(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer cursor.Close(ctx)

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return classes, nil
}

// Get returns the class with id, or nil when there is none.
func (s *ClassStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	return &class, nil
}

// Create inserts a class submission. Submissions without a status start
// out pending.
func (s *ClassStore) Create(ctx context.Context, class *models.Class) (models.InsertResult, error) {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	if class.Status == "" {
		class.Status = models.StatusPending
	}
	res, err := s.coll.InsertOne(ctx, class)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert class: %w", err)
	}
	return insertResult(res), nil
}

// SetFeedback stores admin feedback on the class with id.
func (s *ClassStore) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error) {
	return s.set(ctx, id, bson.M{"feedback": feedback}, false)
}

// SetStatus moves a class to status from whatever state it is in.
func (s *ClassStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	if !models.ValidStatus(status) {
		return models.UpdateResult{}, fmt.Errorf("invalid class status %q", status)
	}
	return s.set(ctx, id, bson.M{"status": status}, false)
}

// SetImage points the class with id at a cover image URL.
func (s *ClassStore) SetImage(ctx context.Context, id primitive.ObjectID, url string) (models.UpdateResult, error) {
	return s.set(ctx, id, bson.M{"image": url}, false)
}

// Update applies a partial update to an existing class only.
func (s *ClassStore) Update(ctx context.Context, id primitive.ObjectID, u models.ClassUpdate) (models.UpdateResult, error) {
	res, err := s.set(ctx, id, u.SetDoc(), false)
	if err != nil {
		return res, err
	}
	return res.Classify(), nil
}

// Upsert applies a partial update, creating the class with that id when it
// does not exist yet.
func (s *ClassStore) Upsert(ctx context.Context, id primitive.ObjectID, u models.ClassUpdate) (models.UpdateResult, error) {
	res, err := s.set(ctx, id, u.SetDoc(), true)
	if err != nil {
		return res, err
	}
	return res.Classify(), nil
}

func (s *ClassStore) set(ctx context.Context, id primitive.ObjectID, fields bson.M, upsert bool) (models.UpdateResult, error) {
	if len(fields) == 0 {
		return models.UpdateResult{}, errors.New("empty class update")
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, options.Update().SetUpsert(upsert))
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update class: %w", err)
	}
	return updateResult(res), nil
}
