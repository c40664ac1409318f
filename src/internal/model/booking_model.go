package model

import "tchukudu-service/src/internal/booking"

// Wizard step requests carry the accumulated bag plus the new selection, the
// way the mobile wizard forwards its params between screens.

type VehicleTypeStepRequest struct {
	Selection   booking.Selection `json:"selection"`
	VehicleType string            `json:"vehicleType" validate:"required,oneof=truck motorcycle van car"`
}

type ServiceTypeStepRequest struct {
	Selection   booking.Selection `json:"selection"`
	ServiceType string            `json:"serviceType" validate:"required,oneof=standard express"`
}

type TransportTypeStepRequest struct {
	Selection     booking.Selection `json:"selection"`
	TransportType string            `json:"transportType" validate:"required,oneof=goods people"`
}

type LocationStepRequest struct {
	Selection   booking.Selection `json:"selection"`
	Pickup      string            `json:"pickup" validate:"required,max=200"`
	Destination string            `json:"destination" validate:"required,max=200"`
}

type SearchTransportersRequest struct {
	UserID    string            `json:"-" validate:"required"`
	Selection booking.Selection `json:"selection"`
}

type BookRideRequest struct {
	UserID        string            `json:"-" validate:"required"`
	Selection     booking.Selection `json:"selection"`
	TransporterID string            `json:"transporterId" validate:"required"`
}

type TransporterSearchResult struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Distance string   `json:"distance"`
	Vehicle  string   `json:"vehicle"`
	Price    float64  `json:"price"`
	Location Location `json:"location"`
	Phone    string   `json:"phone"`
	Reviews  int      `json:"reviews"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
