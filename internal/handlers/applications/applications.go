package applications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/applicationservice"
	"github.com/dkhamitov/helpmate/internal/service/errandservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
	"github.com/dkhamitov/helpmate/pkg/utils"
)

//go:generate mockgen -source=applications.go -destination=applications_mock.go -package=applications

type Service interface {
	Apply(ctx context.Context, errandID, userID string, message *string, proposedPrice *int64) (*domain.ErrandApplication, error)
	Accept(ctx context.Context, errandID, applicationID, requesterID string) (*domain.ErrandApplication, error)
	Withdraw(ctx context.Context, applicationID, userID string) (*domain.ErrandApplication, error)
	ListByErrand(ctx context.Context, errandID, requesterID string) ([]domain.ErrandApplication, error)
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

func toDTO(a *domain.ErrandApplication) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:            a.ID,
		ErrandID:      a.ErrandID,
		HelperID:      a.HelperID,
		Message:       a.Message,
		ProposedPrice: a.ProposedPrice,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// Apply godoc
//
//	@Summary		Apply to an errand
//	@Description	Submit a helper application for an OPEN errand. One application per helper per errand.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			errandID	path		string				true	"Errand ID"
//	@Param			request		body		dto.ApplyRequestDTO	false	"Optional message and counter-offer"
//	@Success		201			{object}	dto.ApplicationResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Helper is not eligible, or the errand is the caller's own"
//	@Failure		404			{object}	utils.Response	"Errand not found"
//	@Failure		409			{object}	utils.Response	"Errand not open or duplicate application"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/{errandID}/applications [post]
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	errandID := chi.URLParam(r, "errandID")

	var req dto.ApplyRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	app, err := h.applicationService.Apply(r.Context(), errandID, userID, req.Message, req.ProposedPrice)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(app))
}

// Accept godoc
//
//	@Summary		Accept an application
//	@Description	Accept one pending application, match the errand to that helper and auto-reject the rest. Only the errand requester may accept.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			errandID		path		string	true	"Errand ID"
//	@Param			applicationID	path		string	true	"Application ID"
//	@Success		200				{object}	dto.ApplicationResponseDTO
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Caller is not the errand requester"
//	@Failure		404				{object}	utils.Response	"Errand or application not found"
//	@Failure		409				{object}	utils.Response	"Errand already matched or application not pending"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/{errandID}/applications/{applicationID}/accept [post]
func (h *ApplicationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	errandID := chi.URLParam(r, "errandID")
	applicationID := chi.URLParam(r, "applicationID")

	app, err := h.applicationService.Accept(r.Context(), errandID, applicationID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(app))
}

// Withdraw godoc
//
//	@Summary		Withdraw an application
//	@Description	Withdraw an own pending application.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			applicationID	path		string	true	"Application ID"
//	@Success		200				{object}	dto.ApplicationResponseDTO
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Caller is not the applicant"
//	@Failure		404				{object}	utils.Response	"Application not found"
//	@Failure		409				{object}	utils.Response	"Application is not pending"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{applicationID}/withdraw [post]
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	applicationID := chi.URLParam(r, "applicationID")

	app, err := h.applicationService.Withdraw(r.Context(), applicationID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(app))
}

// ListByErrand godoc
//
//	@Summary		List applications for an errand
//	@Description	List all applications for an errand. Only the errand requester may list them.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			errandID	path		string	true	"Errand ID"
//	@Success		200			{array}		dto.ApplicationResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Caller is not the errand requester"
//	@Failure		404			{object}	utils.Response	"Errand not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/errands/{errandID}/applications [get]
func (h *ApplicationHandler) ListByErrand(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	errandID := chi.URLParam(r, "errandID")

	apps, err := h.applicationService.ListByErrand(r.Context(), errandID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response := make([]dto.ApplicationResponseDTO, len(apps))
	for i := range apps {
		response[i] = toDTO(&apps[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *ApplicationHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errandservice.ErrErrandNotFound),
		errors.Is(err, applicationservice.ErrApplicationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, applicationservice.ErrHelperIneligible),
		errors.Is(err, applicationservice.ErrSelfApplication),
		errors.Is(err, applicationservice.ErrNotRequester),
		errors.Is(err, applicationservice.ErrNotApplicant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, applicationservice.ErrNotOpen),
		errors.Is(err, applicationservice.ErrDuplicateApplication),
		errors.Is(err, applicationservice.ErrApplicationNotPending),
		errors.Is(err, errandservice.ErrAlreadyMatched):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
