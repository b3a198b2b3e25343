package dto

import "time"

type HelperProfileResponseDTO struct {
	ID                 string     `json:"id"`
	IsOnline           bool       `json:"is_online"`
	IsActive           bool       `json:"is_active"`
	SubscriptionStatus string     `json:"subscription_status" example:"trial"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	Grade              string     `json:"grade" example:"rookie"`
	Rating             float64    `json:"rating" example:"4.5"`
	TotalCompleted     int        `json:"total_completed" example:"12"`
	TotalCancelled     int        `json:"total_cancelled" example:"1"`
	VerificationStatus string     `json:"verification_status" example:"verified"`
}

type UpdateLocationRequestDTO struct {
	Lat float64 `json:"lat" example:"37.5665"`
	Lng float64 `json:"lng" example:"126.978"`
}

type BankDetailsRequestDTO struct {
	BankName    string `json:"bank_name" example:"KEB Hana"`
	BankAccount string `json:"bank_account" example:"79927398713"`
	BankHolder  string `json:"bank_holder" example:"Kim Minsu"`
}
