package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// SignInSource tells which sign-in path created a user.
type SignInSource string

const (
	SourceLocal  SignInSource = "local"
	SourceGoogle SignInSource = "google"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Provider  SignInSource       `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
