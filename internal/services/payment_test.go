package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type recordingIntents struct {
	params *stripe.PaymentIntentParams
	err    error
}

func (r *recordingIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	r.params = params
	if r.err != nil {
		return nil, r.err
	}
	return &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_abc"}, nil
}

func TestToMinorUnits(t *testing.T) {
	assert.EqualValues(t, 2000, ToMinorUnits(20.00))
	assert.EqualValues(t, 1999, ToMinorUnits(19.99))
	assert.EqualValues(t, 1, ToMinorUnits(0.005))
}

func TestCreateIntent(t *testing.T) {
	intents := &recordingIntents{}
	svc := NewPaymentService(intents)

	secret, err := svc.CreateIntent(context.Background(), 20.00, "")
	require.NoError(t, err)

	assert.Equal(t, "pi_1_secret_abc", secret)
	require.NotNil(t, intents.params)
	assert.EqualValues(t, 2000, *intents.params.Amount)
	assert.Equal(t, "usd", *intents.params.Currency)
	assert.Equal(t, []*string{stripe.String("card")}, intents.params.PaymentMethodTypes)
	assert.Nil(t, intents.params.IdempotencyKey)
}

func TestCreateIntent_IdempotencyKey(t *testing.T) {
	intents := &recordingIntents{}
	svc := NewPaymentService(intents)

	_, err := svc.CreateIntent(context.Background(), 5, "order-42")
	require.NoError(t, err)
	require.NotNil(t, intents.params.IdempotencyKey)
	assert.Equal(t, "order-42", *intents.params.IdempotencyKey)
}

func TestCreateIntent_InvalidPrice(t *testing.T) {
	intents := &recordingIntents{}
	svc := NewPaymentService(intents)

	_, err := svc.CreateIntent(context.Background(), 0, "")
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Nil(t, intents.params)
}

func TestCreateIntent_ProcessorError(t *testing.T) {
	svc := NewPaymentService(&recordingIntents{err: errors.New("card_declined")})

	_, err := svc.CreateIntent(context.Background(), 10, "")
	assert.ErrorContains(t, err, "card_declined")
}
