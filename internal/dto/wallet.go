package dto

import "time"

type BalanceResponseDTO struct {
	Available         int64 `json:"available" example:"45000"`
	PendingSettlement int64 `json:"pending_settlement" example:"18000"`
	OpenWithdrawal    int64 `json:"open_withdrawal" example:"0"`
	TotalWithdrawn    int64 `json:"total_withdrawn" example:"120000"`
}

type SettlementResponseDTO struct {
	ID          string    `json:"id"`
	ErrandID    string    `json:"errand_id"`
	TotalAmount int64     `json:"total_amount" example:"16200"`
	Status      string    `json:"status" example:"available"`
	AvailableAt time.Time `json:"available_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type WithdrawRequestDTO struct {
	Amount int64 `json:"amount" example:"30000"`
}

type WithdrawalResponseDTO struct {
	ID          string     `json:"id"`
	Amount      int64      `json:"amount" example:"30000"`
	BankName    string     `json:"bank_name" example:"KEB Hana"`
	BankAccount string     `json:"bank_account" example:"79927398713"`
	BankHolder  string     `json:"bank_holder" example:"Kim Minsu"`
	Status      string     `json:"status" example:"pending"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
