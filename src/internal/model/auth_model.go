package model

import "tchukudu-service/src/internal/entity"

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
	OTP   string `json:"otp" validate:"required,len=4"`
}

type TransporterRegisterRequest struct {
	Phone    string `json:"phone" validate:"required,max=20"`
	FullName string `json:"fullname" validate:"required,max=100"`
	Email    string `json:"email" validate:"omitempty,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type TransporterLoginRequest struct {
	Phone    string `json:"phone" validate:"required,max=20"`
	Password string `json:"password" validate:"required,max=100"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type LogoutRequest struct {
	UserID string `json:"-" validate:"required"`
}
