package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// ValidStatus reports whether s is one of the class approval states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied:
		return true
	}
	return false
}

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail" validate:"required,email"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats" validate:"gte=0"`
	Enrolled        int                `bson:"enrolled" json:"enrolled" validate:"gte=0"`
	Price           float64            `bson:"price" json:"price" validate:"gte=0"`
	Status          string             `bson:"status" json:"status" validate:"omitempty,oneof=pending approved denied"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// ClassUpdate is a partial class document. Nil fields are left untouched.
type ClassUpdate struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Image           *string  `json:"image,omitempty"`
	Description     *string  `json:"description,omitempty"`
	InstructorName  *string  `json:"instructorName,omitempty"`
	InstructorEmail *string  `json:"instructorEmail,omitempty" validate:"omitempty,email"`
	AvailableSeats  *int     `json:"availableSeats,omitempty" validate:"omitempty,gte=0"`
	Enrolled        *int     `json:"enrolled,omitempty" validate:"omitempty,gte=0"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=pending approved denied"`
	Feedback        *string  `json:"feedback,omitempty"`
}

// SetDoc returns the $set document for the non-nil fields.
func (u ClassUpdate) SetDoc() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.InstructorName != nil {
		set["instructorName"] = *u.InstructorName
	}
	if u.InstructorEmail != nil {
		set["instructorEmail"] = *u.InstructorEmail
	}
	if u.AvailableSeats != nil {
		set["availableSeats"] = *u.AvailableSeats
	}
	if u.Enrolled != nil {
		set["enrolled"] = *u.Enrolled
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Feedback != nil {
		set["feedback"] = *u.Feedback
	}
	return set
}

// ClassFilter narrows class listings. Empty fields match everything.
type ClassFilter struct {
	Status          string
	InstructorEmail string
}

// Query builds the find filter for f.
func (f ClassFilter) Query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.InstructorEmail != "" {
		q["instructorEmail"] = f.InstructorEmail
	}
	return q
}
