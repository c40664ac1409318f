package model

import (
	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/payment"
)

type OpenPaymentRequest struct {
	UserID string  `json:"-" validate:"required"`
	Kind   string  `json:"kind" validate:"required,oneof=ride subscription"`
	RideID string  `json:"rideId" validate:"required_if=Kind ride"`
	PlanID string  `json:"planId" validate:"required_if=Kind subscription"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type SelectMethodRequest struct {
	UserID   string `json:"-" validate:"required"`
	MethodID string `json:"methodId" validate:"required"`
}

type MobilePaymentRequest struct {
	UserID      string `json:"-" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=20"`
}

type PaymentNavigationRequest struct {
	UserID string `json:"-" validate:"required"`
	URL    string `json:"url" validate:"required"`
}

type PaymentSheetResponse struct {
	Session *payment.Session `json:"session"`
	Methods []payment.Method `json:"methods,omitempty"`
}

// InitiatePaymentResponse is the mock gateway's initiate shape: mobile money
// answers with a pending transaction, card answers with a redirect URL.
type InitiatePaymentResponse struct {
	TransactionID string `json:"transactionId"`
	PaymentURL    string `json:"paymentUrl,omitempty"`
	Status        string `json:"status,omitempty"`
	Message       string `json:"message"`
}

type VerifyPaymentResponse struct {
	Status       string               `json:"status"`
	Subscription *entity.Subscription `json:"subscription,omitempty"`
}
