package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/walletservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
	"github.com/dkhamitov/helpmate/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=wallet

type Service interface {
	Balance(ctx context.Context, userID string) (*domain.Balance, error)
	Settlements(ctx context.Context, userID string) ([]domain.ErrandSettlement, error)
	RequestWithdrawal(ctx context.Context, userID string, amount int64) (*domain.HelperWithdrawal, error)
	ListWithdrawals(ctx context.Context, userID string) ([]domain.HelperWithdrawal, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func withdrawalDTO(wd *domain.HelperWithdrawal) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:          wd.ID,
		Amount:      wd.Amount,
		BankName:    wd.BankName,
		BankAccount: wd.BankAccount,
		BankHolder:  wd.BankHolder,
		Status:      wd.Status,
		RequestedAt: wd.RequestedAt,
		ProcessedAt: wd.ProcessedAt,
	}
}

// GetBalance godoc
//
//	@Summary		Get helper balance
//	@Description	Aggregate wallet view: matured funds available for withdrawal, settlements still maturing, the in-flight withdrawal and the lifetime withdrawn total.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	balance, err := h.walletService.Balance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrNoProfile) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Available:         balance.Available,
		PendingSettlement: balance.PendingSettlement,
		OpenWithdrawal:    balance.OpenWithdrawal,
		TotalWithdrawn:    balance.TotalWithdrawn,
	})
}

// GetSettlements godoc
//
//	@Summary		List settlements
//	@Description	Per-errand settlement entries for the authenticated helper, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SettlementResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/settlements [get]
func (h *WalletHandler) GetSettlements(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	settlements, err := h.walletService.Settlements(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrNoProfile) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SettlementResponseDTO, len(settlements))
	for i, s := range settlements {
		response[i] = dto.SettlementResponseDTO{
			ID:          s.ID,
			ErrandID:    s.ErrandID,
			TotalAmount: s.TotalAmount,
			Status:      s.Status,
			AvailableAt: s.AvailableAt,
			CreatedAt:   s.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Open a withdrawal against the available balance. Bank details are snapshotted from the profile; only one withdrawal may be open at a time.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal amount"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Helper is not verified"
//	@Failure		404		{object}	utils.Response	"Helper profile not found"
//	@Failure		409		{object}	utils.Response	"A withdrawal is already open"
//	@Failure		422		{object}	utils.Response	"Amount below minimum or bank details missing"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/withdrawals [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wd, err := h.walletService.RequestWithdrawal(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrNoProfile):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrUnverifiedHelper):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrWithdrawalPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrBelowMinimum),
			errors.Is(err, walletservice.ErrMissingBankDetails):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, withdrawalDTO(wd))
}

// GetWithdrawals godoc
//
//	@Summary		List withdrawals
//	@Description	Withdrawal history for the authenticated helper, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	withdrawals, err := h.walletService.ListWithdrawals(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrNoProfile) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = withdrawalDTO(&withdrawals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
