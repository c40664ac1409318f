package model

import "tchukudu-service/src/internal/entity"

type Event interface {
	GetId() string
}

const (
	RideEventRequested = "ride-requested"
	RideEventAccepted  = "ride-accepted"
	RideEventCompleted = "ride-completed"
)

type RideEvent struct {
	ID      string            `json:"id,omitempty"`
	Type    string            `json:"type"`
	Message entity.ActiveRide `json:"message,omitempty"`
}

func (e *RideEvent) GetId() string {
	return e.ID
}
