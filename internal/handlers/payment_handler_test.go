package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/arzan03/musicland/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type capturedIntents struct {
	params *stripe.PaymentIntentParams
}

func (c *capturedIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	c.params = params
	return &stripe.PaymentIntent{ClientSecret: "pi_secret"}, nil
}

func TestCreatePaymentIntent_MinorUnits(t *testing.T) {
	env := newTestEnv()
	intents := &capturedIntents{}
	env.deps.Payments = services.NewPaymentService(intents)

	status, body := call(t, env.app(), http.MethodPost, "/create-payment-intent", map[string]float64{"price": 20.00})

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, string(body))
	require.NotNil(t, intents.params)
	assert.EqualValues(t, 2000, *intents.params.Amount)
	assert.Equal(t, "usd", *intents.params.Currency)
}

func TestCreatePaymentIntent_ForwardsIdempotencyKey(t *testing.T) {
	env := newTestEnv()
	intents := new(mockIntents)
	env.deps.Payments = intents
	intents.On("CreateIntent", mock.Anything, 12.5, "retry-1").Return("pi_secret", nil).Once()

	status, _ := call(t, env.app(), http.MethodPost, "/create-payment-intent",
		map[string]float64{"price": 12.5}, IdempotencyKeyHeader, "retry-1")

	assert.Equal(t, http.StatusOK, status)
	intents.AssertExpectations(t)
}

func TestCreatePaymentIntent_InvalidPrice(t *testing.T) {
	env := newTestEnv()
	intents := new(mockIntents)
	env.deps.Payments = intents

	status, _ := call(t, env.app(), http.MethodPost, "/create-payment-intent", map[string]float64{"price": 0})

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	intents.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePaymentIntent_ProcessorFailure(t *testing.T) {
	env := newTestEnv()
	intents := new(mockIntents)
	env.deps.Payments = intents
	intents.On("CreateIntent", mock.Anything, 10.0, "").Return("", errors.New("api down"))

	status, _ := call(t, env.app(), http.MethodPost, "/create-payment-intent", map[string]float64{"price": 10})

	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestCreatePaymentIntent_NotConfigured(t *testing.T) {
	status, _ := call(t, newTestEnv().app(), http.MethodPost, "/create-payment-intent", map[string]float64{"price": 10})

	assert.Equal(t, http.StatusServiceUnavailable, status)
}
