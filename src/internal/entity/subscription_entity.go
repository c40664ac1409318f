package entity

import "time"

type Subscription struct {
	SubscriptionID string    `json:"subscription_id"`
	TransporterID  string    `json:"transporter_id"`
	PlanID         string    `json:"plan_id"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsActive       bool      `json:"is_active"`
	TransactionID  string    `json:"transaction_id,omitempty"`
}

type SubscriptionPlan struct {
	PlanID   string   `json:"plan_id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Duration int      `json:"duration_days"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular,omitempty"`
}
