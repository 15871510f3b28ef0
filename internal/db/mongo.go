package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	UsersCollection   = "users"
	ClassesCollection = "class"
	CartsCollection   = "carts"
)

var (
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("document already exists")
)

// ConnectMongoDB opens the shared client, pings the primary and returns the
// application database.
func ConnectMongoDB(ctx context.Context, uri, dbName string, log *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info("Connected to MongoDB", zap.String("database", dbName))
	return client, client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes the stores rely on for
// duplicate detection. Payment records without a classId are left out of
// the cart pair index.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("users index: %w", err)
	}

	_, err = database.Collection(CartsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "classId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_email_class").
			SetPartialFilterExpression(bson.M{"classId": bson.M{"$type": "string"}}),
	})
	if err != nil {
		return fmt.Errorf("carts index: %w", err)
	}

	_, err = database.Collection(ClassesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "instructorEmail", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("class indexes: %w", err)
	}
	return nil
}
