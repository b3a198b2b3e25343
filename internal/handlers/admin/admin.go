package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkhamitov/helpmate/internal/service/helperservice"
	"github.com/dkhamitov/helpmate/internal/service/walletservice"
	"github.com/dkhamitov/helpmate/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type WalletService interface {
	Approve(ctx context.Context, withdrawalID string) error
	CompleteWithdrawal(ctx context.Context, withdrawalID string) error
	Reject(ctx context.Context, withdrawalID string) error
}

type HelperService interface {
	Verify(ctx context.Context, helperID string) error
}

type AdminHandler struct {
	walletService WalletService
	helperService HelperService
}

func New(walletService WalletService, helperService HelperService) *AdminHandler {
	return &AdminHandler{
		walletService: walletService,
		helperService: helperService,
	}
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Move a pending withdrawal to approved.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			withdrawalID	path	string	true	"Withdrawal ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{withdrawalID}/approve [post]
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.walletService.Approve)
}

// CompleteWithdrawal godoc
//
//	@Summary		Complete a withdrawal
//	@Description	Mark an approved withdrawal as paid out and consume the matching settlements.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			withdrawalID	path	string	true	"Withdrawal ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal is not approved"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{withdrawalID}/complete [post]
func (h *AdminHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.walletService.CompleteWithdrawal)
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Reject a pending or approved withdrawal, returning the funds to the available balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			withdrawalID	path	string	true	"Withdrawal ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal is already terminal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{withdrawalID}/reject [post]
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.walletService.Reject)
}

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, string) error) {
	withdrawalID := chi.URLParam(r, "withdrawalID")

	if err := op(r.Context(), withdrawalID); err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrWithdrawalConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// VerifyHelper godoc
//
//	@Summary		Verify a helper
//	@Description	Mark a helper profile as verified, unlocking withdrawals.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			helperID	path	string	true	"Helper profile ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/helpers/{helperID}/verify [post]
func (h *AdminHandler) VerifyHelper(w http.ResponseWriter, r *http.Request) {
	helperID := chi.URLParam(r, "helperID")

	if err := h.helperService.Verify(r.Context(), helperID); err != nil {
		if errors.Is(err, helperservice.ErrNoProfile) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
