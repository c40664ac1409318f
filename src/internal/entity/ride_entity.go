package entity

import (
	"database/sql"
	"time"
)

// ActiveRide is the single in-progress ride for a client or transporter
// session. StartedAt anchors the ride clock on the client side, AcceptedAt is
// when a transporter bound it.
type ActiveRide struct {
	RideID          string    `json:"ride_id"`
	ClientID        string    `json:"client_id"`
	TransporterID   string    `json:"transporter_id"`
	ClientName      string    `json:"client_name"`
	TransporterName string    `json:"transporter_name"`
	Pickup          string    `json:"pickup"`
	Destination     string    `json:"destination"`
	Price           float64   `json:"price"`
	Distance        string    `json:"distance"`
	Time            string    `json:"time"`
	VehicleType     string    `json:"vehicle_type"`
	ServiceType     string    `json:"service_type"`
	TransportType   string    `json:"transport_type"`
	Status          string    `json:"status"`
	StartedAt       time.Time `json:"started_at"`
	AcceptedAt      time.Time `json:"accepted_at,omitempty"`
}

// RideOffer is the single pending ride notification on the transporter side.
type RideOffer struct {
	OfferID       string    `json:"offer_id"`
	ClientName    string    `json:"client_name"`
	Pickup        string    `json:"pickup"`
	Destination   string    `json:"destination"`
	Price         float64   `json:"price"`
	Distance      string    `json:"distance"`
	Time          string    `json:"time"`
	VehicleType   string    `json:"vehicle_type"`
	ServiceType   string    `json:"service_type"`
	TransportType string    `json:"transport_type"`
	OfferedAt     time.Time `json:"offered_at"`
}

type RideHistory struct {
	ID              uint64         `db:"id"`
	RideID          string         `db:"ride_id"`
	ClientID        string         `db:"client_id"`
	TransporterID   string         `db:"transporter_id"`
	ClientName      string         `db:"client_name"`
	TransporterName string         `db:"transporter_name"`
	Pickup          string         `db:"pickup"`
	Destination     string         `db:"destination"`
	Price           float64        `db:"price"`
	Distance        string         `db:"distance"`
	Duration        string         `db:"duration"`
	VehicleType     string         `db:"vehicle_type"`
	ServiceType     string         `db:"service_type"`
	TransportType   string         `db:"transport_type"`
	Status          string         `db:"status"`
	Rating          sql.NullInt64  `db:"rating"`
	Comment         sql.NullString `db:"comment"`
	RatedAt         *time.Time     `db:"rated_at"`
	CompletedAt     *time.Time     `db:"completed_at"`
	CreatedAt       time.Time      `db:"created_at"`
}

type EarningsSummary struct {
	TotalRides    int     `db:"total_rides" json:"total_rides"`
	TotalEarnings float64 `db:"total_earnings" json:"total_earnings"`
}
