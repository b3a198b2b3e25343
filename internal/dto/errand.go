package dto

import "time"

type CreateErrandRequestDTO struct {
	Category       string     `json:"category" example:"delivery"`
	PickupLat      float64    `json:"pickup_lat" example:"37.5665"`
	PickupLng      float64    `json:"pickup_lng" example:"126.978"`
	PickupAddress  string     `json:"pickup_address" example:"12 Sejong-daero"`
	DropoffLat     float64    `json:"dropoff_lat" example:"37.5512"`
	DropoffLng     float64    `json:"dropoff_lng" example:"126.9882"`
	DropoffAddress string     `json:"dropoff_address" example:"105 Namsan-gil"`
	BasePrice      int64      `json:"base_price" example:"15000"`
	Tip            int64      `json:"tip" example:"2000"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
}

type ErrandResponseDTO struct {
	ID             string     `json:"id"`
	RequesterID    string     `json:"requester_id"`
	HelperID       *string    `json:"helper_id,omitempty"`
	Category       string     `json:"category" example:"delivery"`
	PickupLat      float64    `json:"pickup_lat" example:"37.5665"`
	PickupLng      float64    `json:"pickup_lng" example:"126.978"`
	PickupAddress  string     `json:"pickup_address"`
	DropoffLat     float64    `json:"dropoff_lat" example:"37.5512"`
	DropoffLng     float64    `json:"dropoff_lng" example:"126.9882"`
	DropoffAddress string     `json:"dropoff_address"`
	BasePrice      int64      `json:"base_price" example:"15000"`
	DistancePrice  int64      `json:"distance_price" example:"1000"`
	Tip            int64      `json:"tip" example:"2000"`
	TotalPrice     int64      `json:"total_price" example:"18000"`
	Status         string     `json:"status" example:"OPEN"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CancelReason   *string    `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CancelErrandRequestDTO struct {
	Reason string `json:"reason" example:"change of plans"`
}
