package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a class a user has put in their cart. Once paid for, the same
// document carries the payment record.
type CartItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email" validate:"required,email"`
	ClassID         string             `bson:"classId" json:"classId" validate:"required"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail,omitempty" json:"instructorEmail,omitempty"`
	Price           float64            `bson:"price" json:"price" validate:"gte=0"`
	PaymentStatus   string             `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	Payment         *Payment           `bson:"payment,omitempty" json:"payment,omitempty"`
}

const PaymentStatusPaid = "paid"

type Payment struct {
	TransactionID string    `bson:"transactionId" json:"transactionId" validate:"required"`
	Email         string    `bson:"email" json:"email" validate:"required,email"`
	ClassID       string    `bson:"classId,omitempty" json:"classId,omitempty"`
	Price         float64   `bson:"price" json:"price" validate:"gte=0"`
	Quantity      int       `bson:"quantity,omitempty" json:"quantity,omitempty" validate:"gte=0"`
	Status        string    `bson:"status" json:"status"`
	Date          time.Time `bson:"date" json:"date"`
}
