package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Currency of every payment intent.
const Currency = stripe.CurrencyUSD

var ErrInvalidPrice = errors.New("price must be greater than zero")

// IntentCreator is the part of the Stripe payment intent client the
// payment service needs.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// PaymentService creates payment intents for class purchases.
type PaymentService struct {
	intents IntentCreator
}

// NewPaymentService returns a PaymentService backed by intents.
func NewPaymentService(intents IntentCreator) *PaymentService {
	return &PaymentService{intents: intents}
}

// NewStripePaymentService talks to the Stripe API with secretKey.
func NewStripePaymentService(secretKey string) *PaymentService {
	return NewPaymentService(&paymentintent.Client{
		B:   stripe.GetBackend(stripe.APIBackend),
		Key: secretKey,
	})
}

// ToMinorUnits converts a price in dollars to cents.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent requests a card payment intent for price and returns its
// client secret. A non-empty idempotencyKey makes retries return the same
// intent instead of creating a new one.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64, idempotencyKey string) (string, error) {
	amount := ToMinorUnits(price)
	if amount <= 0 {
		return "", ErrInvalidPrice
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(Currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	intent, err := s.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
