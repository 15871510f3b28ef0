package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// The result types mirror the MongoDB shell field names so clients can keep
// checking insertedId, modifiedCount and deletedCount.

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// Outcome says what a typed update did to the target document.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeUpdated  Outcome = "updated"
	OutcomeNotFound Outcome = "not_found"
)

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
	Outcome       Outcome     `json:"outcome,omitempty"`
}

// Classify fills Outcome from the counters.
func (r UpdateResult) Classify() UpdateResult {
	switch {
	case r.UpsertedCount > 0:
		r.Outcome = OutcomeCreated
	case r.MatchedCount > 0:
		r.Outcome = OutcomeUpdated
	default:
		r.Outcome = OutcomeNotFound
	}
	return r
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Message is the payload for requests that were accepted but did nothing,
// such as creating a user that already exists.
type Message struct {
	Message string `json:"message"`
}

// ParseID converts a hex string into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}
