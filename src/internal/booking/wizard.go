package booking

import (
	"errors"
	"strings"
)

// Step is a position in the booking wizard. The wizard is strictly forward:
// every step requires a non-empty selection, no step may rewrite an earlier
// one, and the accumulated bag travels with the request.
type Step string

const (
	StepVehicleType     Step = "vehicleType"
	StepServiceType     Step = "serviceType"
	StepTransportType   Step = "transportType"
	StepLocation        Step = "location"
	StepTransporterList Step = "transporterList"
	StepRideTracking    Step = "rideTracking"
)

var (
	ErrSelectionRequired = errors.New("booking: a non-empty selection is required at this step")
	ErrOutOfOrder        = errors.New("booking: steps must be completed in order")
	ErrIncomplete        = errors.New("booking: selection is incomplete")
)

// Selection is the transient wizard accumulator. Values are immutable
// snapshots: every advance returns a new Selection.
type Selection struct {
	Step          Step   `json:"step"`
	VehicleType   string `json:"vehicleType,omitempty"`
	ServiceType   string `json:"serviceType,omitempty"`
	TransportType string `json:"transportType,omitempty"`
	Pickup        string `json:"pickup,omitempty"`
	Destination   string `json:"destination,omitempty"`
}

// New starts a fresh wizard at the vehicle-type step.
func New() Selection {
	return Selection{Step: StepVehicleType}
}

func (s Selection) WithVehicleType(vehicleType string) (Selection, error) {
	if s.Step != StepVehicleType {
		return s, ErrOutOfOrder
	}
	if strings.TrimSpace(vehicleType) == "" {
		return s, ErrSelectionRequired
	}
	s.VehicleType = vehicleType
	s.Step = StepServiceType
	return s, nil
}

func (s Selection) WithServiceType(serviceType string) (Selection, error) {
	if s.Step != StepServiceType {
		return s, ErrOutOfOrder
	}
	if strings.TrimSpace(serviceType) == "" {
		return s, ErrSelectionRequired
	}
	s.ServiceType = serviceType
	s.Step = StepTransportType
	return s, nil
}

func (s Selection) WithTransportType(transportType string) (Selection, error) {
	if s.Step != StepTransportType {
		return s, ErrOutOfOrder
	}
	if strings.TrimSpace(transportType) == "" {
		return s, ErrSelectionRequired
	}
	s.TransportType = transportType
	s.Step = StepLocation
	return s, nil
}

func (s Selection) WithLocations(pickup, destination string) (Selection, error) {
	if s.Step != StepLocation {
		return s, ErrOutOfOrder
	}
	if strings.TrimSpace(pickup) == "" || strings.TrimSpace(destination) == "" {
		return s, ErrSelectionRequired
	}
	s.Pickup = pickup
	s.Destination = destination
	s.Step = StepTransporterList
	return s, nil
}

// Complete reports whether the bag holds everything transporter search needs.
func (s Selection) Complete() error {
	if s.VehicleType == "" || s.ServiceType == "" || s.TransportType == "" ||
		s.Pickup == "" || s.Destination == "" {
		return ErrIncomplete
	}
	if s.Step != StepTransporterList {
		return ErrOutOfOrder
	}
	return nil
}

// ChosenTransporter is the terminal binding of the wizard: the accumulated
// bag plus the picked transporter.
type ChosenTransporter struct {
	Selection        Selection `json:"selection"`
	TransporterID    string    `json:"transporterId"`
	TransporterName  string    `json:"transporterName"`
	TransporterPhone string    `json:"transporterPhone"`
	Price            float64   `json:"price"`
}

// Choose transitions the wizard to ride tracking with the picked transporter.
func (s Selection) Choose(id, name, phone string, price float64) (ChosenTransporter, error) {
	if err := s.Complete(); err != nil {
		return ChosenTransporter{}, err
	}
	if strings.TrimSpace(id) == "" {
		return ChosenTransporter{}, ErrSelectionRequired
	}
	s.Step = StepRideTracking
	return ChosenTransporter{
		Selection:        s,
		TransporterID:    id,
		TransporterName:  name,
		TransporterPhone: phone,
		Price:            price,
	}, nil
}
