package model

// Asynq task types and payloads.
const (
	TaskRideOffer     = "ride:offer"
	TaskPaymentVerify = "payment:verify"
)

type RideOfferTaskPayload struct {
	TransporterID string `json:"transporterId"`
}

type PaymentVerifyTaskPayload struct {
	UserID        string `json:"userId"`
	TransactionID string `json:"transactionId"`
}
