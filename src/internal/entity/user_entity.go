package entity

import "time"

const (
	UserTypeClient      = "client"
	UserTypeTransporter = "transporter"
)

type User struct {
	UserID            string     `json:"user_id" db:"user_id"`
	Phone             string     `json:"phone" db:"phone"`
	FullName          string     `json:"full_name" db:"full_name"`
	Email             string     `json:"email,omitempty" db:"email"`
	Avatar            string     `json:"avatar,omitempty" db:"avatar"`
	Type              string     `json:"type" db:"type"`
	IsProfileComplete bool       `json:"is_profile_complete" db:"is_profile_complete"`
	CreatedAt         time.Time  `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}
