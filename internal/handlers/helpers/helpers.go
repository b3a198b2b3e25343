package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/helperservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
	"github.com/dkhamitov/helpmate/pkg/geo"
	"github.com/dkhamitov/helpmate/pkg/utils"
)

//go:generate mockgen -source=helpers.go -destination=helpers_mock.go -package=helpers

type Service interface {
	Profile(ctx context.Context, userID string) (*domain.HelperProfile, error)
	UpdateLocation(ctx context.Context, userID string, lat, lng float64) error
	SetOnline(ctx context.Context, userID string, online bool) error
	UpdateBankDetails(ctx context.Context, userID, bankName, bankAccount, bankHolder string) error
}

type HelperHandler struct {
	helperService Service
}

func New(helperService Service) *HelperHandler {
	return &HelperHandler{
		helperService: helperService,
	}
}

// GetProfile godoc
//
//	@Summary		Get own helper profile
//	@Description	Profile of the authenticated helper. Bank details and true coordinates are not exposed.
//	@Tags			Helpers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.HelperProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/helpers/me [get]
func (h *HelperHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	profile, err := h.helperService.Profile(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HelperProfileResponseDTO{
		ID:                 profile.ID,
		IsOnline:           profile.IsOnline,
		IsActive:           profile.IsActive,
		SubscriptionStatus: profile.SubscriptionStatus,
		TrialEndsAt:        profile.TrialEndsAt,
		Grade:              profile.Grade,
		Rating:             profile.Rating,
		TotalCompleted:     profile.TotalCompleted,
		TotalCancelled:     profile.TotalCancelled,
		VerificationStatus: profile.VerificationStatus,
	})
}

// UpdateLocation godoc
//
//	@Summary		Report current position
//	@Description	Store the helper's position and refresh the freshness timestamp used by proximity queries.
//	@Tags			Helpers
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	dto.UpdateLocationRequestDTO	true	"Current coordinates"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid coordinates"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/helpers/me/location [put]
func (h *HelperHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.UpdateLocationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.helperService.UpdateLocation(r.Context(), userID, req.Lat, req.Lng); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GoOnline godoc
//
//	@Summary		Go online
//	@Description	Mark the helper as available for dispatch.
//	@Tags			Helpers
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/helpers/me/online [post]
func (h *HelperHandler) GoOnline(w http.ResponseWriter, r *http.Request) {
	h.setOnline(w, r, true)
}

// GoOffline godoc
//
//	@Summary		Go offline
//	@Description	Mark the helper as unavailable. Offline helpers never appear in proximity results.
//	@Tags			Helpers
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/helpers/me/offline [post]
func (h *HelperHandler) GoOffline(w http.ResponseWriter, r *http.Request) {
	h.setOnline(w, r, false)
}

func (h *HelperHandler) setOnline(w http.ResponseWriter, r *http.Request, online bool) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	if err := h.helperService.SetOnline(r.Context(), userID, online); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// UpdateBankDetails godoc
//
//	@Summary		Set payout bank details
//	@Description	Store the bank account used for withdrawal snapshots. The account number must pass a checksum.
//	@Tags			Helpers
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	dto.BankDetailsRequestDTO	true	"Bank details"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Helper profile not found"
//	@Failure		422	{object}	utils.Response	"Account number failed checksum"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/helpers/me/bank [put]
func (h *HelperHandler) UpdateBankDetails(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.BankDetailsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.helperService.UpdateBankDetails(r.Context(), userID, req.BankName, req.BankAccount, req.BankHolder)
	if err != nil {
		if errors.Is(err, helperservice.ErrInvalidBankAccount) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HelperHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, helperservice.ErrNoProfile):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, geo.ErrInvalidLocation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
