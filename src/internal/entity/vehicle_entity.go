package entity

const (
	VehicleTypeTruck      = "truck"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeVan        = "van"
	VehicleTypeCar        = "car"
)

// Vehicle is the transporter's declared vehicle, one per transporter.
// A transporter without one cannot go online.
type Vehicle struct {
	VehicleID     string  `json:"vehicle_id"`
	TransporterID string  `json:"transporter_id"`
	Type          string  `json:"type"`
	Model         string  `json:"model"`
	LicensePlate  string  `json:"license_plate"`
	Capacity      float64 `json:"capacity"`
	PricePerKm    float64 `json:"price_per_km"`
	PricePerKg    float64 `json:"price_per_kg,omitempty"`
	Image         string  `json:"image,omitempty"`
}
