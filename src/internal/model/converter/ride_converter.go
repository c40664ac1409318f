package converter

import (
	"time"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/model"
)

func RideToEvent(eventType string, ride *entity.ActiveRide) *model.RideEvent {
	return &model.RideEvent{
		ID:      ride.RideID,
		Type:    eventType,
		Message: *ride,
	}
}

func OfferToActiveRide(offer *entity.RideOffer, transporter *entity.User) *entity.ActiveRide {
	now := time.Now()
	return &entity.ActiveRide{
		RideID:          offer.OfferID,
		ClientName:      offer.ClientName,
		TransporterID:   transporter.UserID,
		TransporterName: transporter.FullName,
		Pickup:          offer.Pickup,
		Destination:     offer.Destination,
		Price:           offer.Price,
		Distance:        offer.Distance,
		Time:            offer.Time,
		VehicleType:     offer.VehicleType,
		ServiceType:     offer.ServiceType,
		TransportType:   offer.TransportType,
		Status:          "accepted",
		StartedAt:       now,
		AcceptedAt:      now,
	}
}

func ActiveRideToHistory(ride *entity.ActiveRide, completedAt time.Time) *entity.RideHistory {
	return &entity.RideHistory{
		RideID:          ride.RideID,
		ClientID:        ride.ClientID,
		TransporterID:   ride.TransporterID,
		ClientName:      ride.ClientName,
		TransporterName: ride.TransporterName,
		Pickup:          ride.Pickup,
		Destination:     ride.Destination,
		Price:           ride.Price,
		Distance:        ride.Distance,
		Duration:        ride.Time,
		VehicleType:     ride.VehicleType,
		ServiceType:     ride.ServiceType,
		TransportType:   ride.TransportType,
		Status:          "completed",
		CompletedAt:     &completedAt,
	}
}
