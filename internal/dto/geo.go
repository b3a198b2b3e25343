package dto

type NearbyHelperDTO struct {
	HelperID   string  `json:"helper_id"`
	DistanceKm float64 `json:"distance_km" example:"1.2"`
	Grade      string  `json:"grade" example:"expert"`
	Rating     float64 `json:"rating" example:"4.8"`
	Lat        float64 `json:"lat" example:"37.5671"`
	Lng        float64 `json:"lng" example:"126.9765"`
}

type NearbyHelpersResponseDTO struct {
	Helpers []NearbyHelperDTO `json:"helpers"`
	Count   int               `json:"count" example:"2"`
}

type NearbyErrandDTO struct {
	ErrandID      string  `json:"errand_id"`
	DistanceKm    float64 `json:"distance_km" example:"0.8"`
	Category      string  `json:"category" example:"delivery"`
	TotalPrice    int64   `json:"total_price" example:"18000"`
	PickupAddress string  `json:"pickup_address"`
	PickupLat     float64 `json:"pickup_lat" example:"37.5665"`
	PickupLng     float64 `json:"pickup_lng" example:"126.978"`
}

type NearbyErrandsResponseDTO struct {
	Errands []NearbyErrandDTO `json:"errands"`
	Count   int               `json:"count" example:"1"`
}
