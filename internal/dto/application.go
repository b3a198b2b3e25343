package dto

import "time"

type ApplyRequestDTO struct {
	Message       *string `json:"message,omitempty" example:"I'm two blocks away"`
	ProposedPrice *int64  `json:"proposed_price,omitempty" example:"16000"`
}

type ApplicationResponseDTO struct {
	ID            string    `json:"id"`
	ErrandID      string    `json:"errand_id"`
	HelperID      string    `json:"helper_id"`
	Message       *string   `json:"message,omitempty"`
	ProposedPrice *int64    `json:"proposed_price,omitempty" example:"16000"`
	Status        string    `json:"status" example:"pending"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
