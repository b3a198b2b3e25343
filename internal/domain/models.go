package domain

import "time"

type User struct {
	ID           string    `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Errand struct {
	ID             string     `db:"id"`
	RequesterID    string     `db:"requester_id"`
	HelperID       *string    `db:"helper_id"`
	Category       string     `db:"category"`
	PickupLat      float64    `db:"pickup_lat"`
	PickupLng      float64    `db:"pickup_lng"`
	PickupAddress  string     `db:"pickup_address"`
	DropoffLat     float64    `db:"dropoff_lat"`
	DropoffLng     float64    `db:"dropoff_lng"`
	DropoffAddress string     `db:"dropoff_address"`
	BasePrice      int64      `db:"base_price"`
	DistancePrice  int64      `db:"distance_price"`
	Tip            int64      `db:"tip"`
	TotalPrice     int64      `db:"total_price"`
	Status         string     `db:"status"`
	ScheduledAt    *time.Time `db:"scheduled_at"`
	StartedAt      *time.Time `db:"started_at"`
	CompletedAt    *time.Time `db:"completed_at"`
	CancelledAt    *time.Time `db:"cancelled_at"`
	CancelReason   *string    `db:"cancel_reason"`
	CreatedAt      time.Time  `db:"created_at"`
}

type HelperProfile struct {
	ID                 string     `db:"id"`
	UserID             string     `db:"user_id"`
	Lat                *float64   `db:"lat"`
	Lng                *float64   `db:"lng"`
	LastLocationAt     *time.Time `db:"last_location_at"`
	IsOnline           bool       `db:"is_online"`
	IsActive           bool       `db:"is_active"`
	SubscriptionStatus string     `db:"subscription_status"`
	TrialEndsAt        *time.Time `db:"trial_ends_at"`
	Grade              string     `db:"grade"`
	Rating             float64    `db:"rating"`
	TotalCompleted     int        `db:"total_completed"`
	TotalCancelled     int        `db:"total_cancelled"`
	BankName           *string    `db:"bank_name"`
	BankAccount        *string    `db:"bank_account"`
	BankHolder         *string    `db:"bank_holder"`
	VerificationStatus string     `db:"verification_status"`
	CreatedAt          time.Time  `db:"created_at"`
}

type ErrandApplication struct {
	ID            string    `db:"id"`
	ErrandID      string    `db:"errand_id"`
	HelperID      string    `db:"helper_id"`
	Message       *string   `db:"message"`
	ProposedPrice *int64    `db:"proposed_price"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type ErrandSettlement struct {
	ID          string    `db:"id"`
	ErrandID    string    `db:"errand_id"`
	HelperID    string    `db:"helper_id"`
	TotalAmount int64     `db:"total_amount"`
	Status      string    `db:"status"`
	AvailableAt time.Time `db:"available_at"`
	CreatedAt   time.Time `db:"created_at"`
}

type HelperWithdrawal struct {
	ID          string     `db:"id"`
	HelperID    string     `db:"helper_id"`
	Amount      int64      `db:"amount"`
	BankName    string     `db:"bank_name"`
	BankAccount string     `db:"bank_account"`
	BankHolder  string     `db:"bank_holder"`
	Status      string     `db:"status"`
	RequestedAt time.Time  `db:"requested_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

// Balance is the aggregate wallet view for one helper. Available is
// matured settlements minus in-flight and completed withdrawals.
type Balance struct {
	HelperID          string
	Available         int64
	PendingSettlement int64
	OpenWithdrawal    int64
	TotalWithdrawn    int64
}

// NearbyHelper is one proximity query result. Lat/Lng carry a synthetic
// masked position, never the helper's true coordinates.
type NearbyHelper struct {
	HelperID   string
	DistanceKm float64
	Grade      string
	Rating     float64
	Lat        float64
	Lng        float64
}

type NearbyErrand struct {
	ErrandID      string
	DistanceKm    float64
	Category      string
	TotalPrice    int64
	PickupAddress string
	PickupLat     float64
	PickupLng     float64
}
