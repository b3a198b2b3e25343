package errands

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/errandservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
	"github.com/dkhamitov/helpmate/pkg/geo"
	"github.com/dkhamitov/helpmate/pkg/utils"
)

//go:generate mockgen -source=errands.go -destination=errands_mock.go -package=errands

type Service interface {
	Create(ctx context.Context, requesterID string, in errandservice.CreateInput) (*domain.Errand, error)
	Get(ctx context.Context, errandID, callerID string) (*domain.Errand, error)
	ListByRequester(ctx context.Context, requesterID string) ([]domain.Errand, error)
	ListByHelper(ctx context.Context, userID string) ([]domain.Errand, error)
	Start(ctx context.Context, errandID, userID string) (*domain.Errand, error)
	Complete(ctx context.Context, errandID, userID string) (*domain.Errand, error)
	Cancel(ctx context.Context, errandID, callerID, reason string) (*domain.Errand, error)
}

type ErrandHandler struct {
	errandService Service
}

func New(errandService Service) *ErrandHandler {
	return &ErrandHandler{
		errandService: errandService,
	}
}

func toDTO(e *domain.Errand) dto.ErrandResponseDTO {
	return dto.ErrandResponseDTO{
		ID:             e.ID,
		RequesterID:    e.RequesterID,
		HelperID:       e.HelperID,
		Category:       e.Category,
		PickupLat:      e.PickupLat,
		PickupLng:      e.PickupLng,
		PickupAddress:  e.PickupAddress,
		DropoffLat:     e.DropoffLat,
		DropoffLng:     e.DropoffLng,
		DropoffAddress: e.DropoffAddress,
		BasePrice:      e.BasePrice,
		DistancePrice:  e.DistancePrice,
		Tip:            e.Tip,
		TotalPrice:     e.TotalPrice,
		Status:         e.Status,
		ScheduledAt:    e.ScheduledAt,
		StartedAt:      e.StartedAt,
		CompletedAt:    e.CompletedAt,
		CancelledAt:    e.CancelledAt,
		CancelReason:   e.CancelReason,
		CreatedAt:      e.CreatedAt,
	}
}

// Create godoc
//
//	@Summary		Post a new errand
//	@Description	Create an OPEN errand with pickup and dropoff points. The distance component of the price is computed server-side.
//	@Tags			Errands
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateErrandRequestDTO	true	"Errand payload"
//	@Success		201		{object}	dto.ErrandResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid body or coordinates"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/errands [post]
func (h *ErrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateErrandRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	errand, err := h.errandService.Create(r.Context(), userID, errandservice.CreateInput{
		Category:       req.Category,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
		PickupAddress:  req.PickupAddress,
		DropoffLat:     req.DropoffLat,
		DropoffLng:     req.DropoffLng,
		DropoffAddress: req.DropoffAddress,
		BasePrice:      req.BasePrice,
		Tip:            req.Tip,
		ScheduledAt:    req.ScheduledAt,
	})
	if err != nil {
		if errors.Is(err, geo.ErrInvalidLocation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(errand))
}

// Get godoc
//
//	@Summary		Get one errand
//	@Description	Fetch an errand by id. For callers other than the requester and the assigned helper the pickup and dropoff coordinates are masked.
//	@Tags			Errands
//	@Security		BearerAuth
//	@Produce		json
//	@Param			errandID	path		string	true	"Errand ID"
//	@Success		200			{object}	dto.ErrandResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Errand not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/{errandID} [get]
func (h *ErrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	errandID := chi.URLParam(r, "errandID")

	errand, err := h.errandService.Get(r.Context(), errandID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(errand))
}

// ListMine godoc
//
//	@Summary		List own errands
//	@Description	Requesters get the errands they posted, helpers get the errands assigned to them.
//	@Tags			Errands
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ErrandResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/mine [get]
func (h *ErrandHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	role, _ := r.Context().Value(auth.RoleKey).(string)

	var (
		errands []domain.Errand
		err     error
	)
	if role == auth.RoleHelper {
		errands, err = h.errandService.ListByHelper(r.Context(), userID)
	} else {
		errands, err = h.errandService.ListByRequester(r.Context(), userID)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ErrandResponseDTO, len(errands))
	for i := range errands {
		response[i] = toDTO(&errands[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Start godoc
//
//	@Summary		Start an errand
//	@Description	Move a MATCHED errand to IN_PROGRESS. Only the assigned helper may start it.
//	@Tags			Errands
//	@Security		BearerAuth
//	@Produce		json
//	@Param			errandID	path		string	true	"Errand ID"
//	@Success		200			{object}	dto.ErrandResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Caller is not the assigned helper"
//	@Failure		404			{object}	utils.Response	"Errand not found"
//	@Failure		409			{object}	utils.Response	"Errand is not in a startable state"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/{errandID}/start [post]
func (h *ErrandHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	errandID := chi.URLParam(r, "errandID")

	errand, err := h.errandService.Start(r.Context(), errandID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(errand))
}

// Complete godoc
//
//	@Summary		Complete an errand
//	@Description	Move an IN_PROGRESS errand to COMPLETED and open the settlement. Only the assigned helper may complete it.
//	@Tags			Errands
//	@Security		BearerAuth
//	@Produce		json
//	@Param			errandID	path		string	true	"Errand ID"
//	@Success		200			{object}	dto.ErrandResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Caller is not the assigned helper"
//	@Failure		404			{object}	utils.Response	"Errand not found"
//	@Failure		409			{object}	utils.Response	"Errand is not in progress"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/{errandID}/complete [post]
func (h *ErrandHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	errandID := chi.URLParam(r, "errandID")

	errand, err := h.errandService.Complete(r.Context(), errandID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(errand))
}

// Cancel godoc
//
//	@Summary		Cancel an errand
//	@Description	Cancel a live errand. Requesters may cancel before completion, the assigned helper before start.
//	@Tags			Errands
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			errandID	path		string						true	"Errand ID"
//	@Param			request		body		dto.CancelErrandRequestDTO	false	"Cancellation reason"
//	@Success		200			{object}	dto.ErrandResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Caller is not a participant"
//	@Failure		404			{object}	utils.Response	"Errand not found"
//	@Failure		409			{object}	utils.Response	"Errand is already terminal"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/{errandID}/cancel [post]
func (h *ErrandHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	errandID := chi.URLParam(r, "errandID")

	var req dto.CancelErrandRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	errand, err := h.errandService.Cancel(r.Context(), errandID, userID, req.Reason)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(errand))
}

func (h *ErrandHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errandservice.ErrErrandNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errandservice.ErrNotAssignedHelper),
		errors.Is(err, errandservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, errandservice.ErrInvalidTransition),
		errors.Is(err, errandservice.ErrAlreadyMatched):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
