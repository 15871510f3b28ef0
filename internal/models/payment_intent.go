package models

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
