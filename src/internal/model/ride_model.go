package model

import "tchukudu-service/src/internal/entity"

type TrackRideRequest struct {
	UserID string `json:"-" validate:"required"`
}

type TrackRideResponse struct {
	Ride           *entity.ActiveRide `json:"ride"`
	Status         string             `json:"status"`
	CanCancel      bool               `json:"canCancel"`
	CancelTimeLeft int                `json:"cancelTimeLeft"`
	ElapsedSeconds int                `json:"elapsedSeconds"`
	PaymentDue     bool               `json:"paymentDue"`
	Amount         float64            `json:"amount,omitempty"`
}

type CancelRideRequest struct {
	UserID string `json:"-" validate:"required"`
}

type SubmitRatingRequest struct {
	UserID  string         `json:"-" validate:"required"`
	RideID  string         `json:"rideId" validate:"required"`
	Rating  int            `json:"rating" validate:"required,min=1,max=5"`
	Comment string         `json:"comment" validate:"max=500"`
	Criteria RatingCriteria `json:"criteria"`
}

type RatingCriteria struct {
	Punctuality      int `json:"punctuality" validate:"omitempty,min=1,max=5"`
	Safety           int `json:"safety" validate:"omitempty,min=1,max=5"`
	VehicleCondition int `json:"vehicleCondition" validate:"omitempty,min=1,max=5"`
	ServiceQuality   int `json:"serviceQuality" validate:"omitempty,min=1,max=5"`
}

type AvailabilityRequest struct {
	UserID string `json:"-" validate:"required"`
	Active bool   `json:"active"`
}

type OfferDecisionRequest struct {
	UserID  string `json:"-" validate:"required"`
	OfferID string `json:"offerId" validate:"required"`
}

type CompleteRideRequest struct {
	UserID  string `json:"-" validate:"required"`
	Confirm bool   `json:"confirm"`
}

type SaveVehicleRequest struct {
	UserID       string  `json:"-" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=truck motorcycle van car"`
	Model        string  `json:"model" validate:"required,max=100"`
	LicensePlate string  `json:"licensePlate" validate:"required,max=20"`
	Capacity     float64 `json:"capacity" validate:"required,gt=0"`
	PricePerKm   float64 `json:"pricePerKm" validate:"required,gt=0"`
	PricePerKg   float64 `json:"pricePerKg" validate:"omitempty,gt=0"`
}

type RideHistoryRequest struct {
	UserID string `json:"-" validate:"required"`
}

type EarningsRequest struct {
	UserID string `json:"-" validate:"required"`
}
