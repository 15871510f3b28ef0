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

// CartStore persists cart items in the carts collection.
type CartStore struct {
	coll *mongo.Collection
}

// NewCartStore returns a CartStore on database.
func NewCartStore(database *mongo.Database) *CartStore {
	return &CartStore{coll: database.Collection(CartsCollection)}
}

// ListByEmail returns the cart items of email.
func (s *CartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.find(ctx, bson.M{"email": email})
}

// ListPaid returns the cart documents of email that carry a payment.
func (s *CartStore) ListPaid(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.find(ctx, bson.M{"email": email, "paymentStatus": models.PaymentStatusPaid})
}

func (s *CartStore) find(ctx context.Context, filter bson.M) ([]models.CartItem, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

// Get returns the cart item with id, or nil when there is none.
func (s *CartStore) Get(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

// Add inserts item unless the (email, classId) pair is already in the cart.
func (s *CartStore) Add(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	res, err := s.coll.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return models.InsertResult{}, ErrDuplicate
	}
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert cart item: %w", err)
	}
	return insertResult(res), nil
}

// Delete removes the cart item with id.
func (s *CartStore) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete cart item: %w", err)
	}
	return deleteResult(res), nil
}

// RecordPayment writes payment onto the cart document id, creating the
// document when it is missing.
func (s *CartStore) RecordPayment(ctx context.Context, id primitive.ObjectID, payment models.Payment) (models.UpdateResult, error) {
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPaid
	}
	set := bson.M{
		"email":         payment.Email,
		"paymentStatus": payment.Status,
		"payment":       payment,
	}
	if payment.ClassID != "" {
		set["classId"] = payment.ClassID
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return models.UpdateResult{}, ErrDuplicate
	}
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("record payment: %w", err)
	}
	return updateResult(res).Classify(), nil
}
