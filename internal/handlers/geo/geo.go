package geo

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/geoservice"
	"github.com/dkhamitov/helpmate/pkg/utils"
)

//go:generate mockgen -source=geo.go -destination=geo_mock.go -package=geo

type Service interface {
	NearbyHelpers(ctx context.Context, q geoservice.Query) ([]domain.NearbyHelper, error)
	NearbyErrands(ctx context.Context, q geoservice.Query) ([]domain.NearbyErrand, error)
}

type GeoHandler struct {
	geoService Service
}

func New(geoService Service) *GeoHandler {
	return &GeoHandler{
		geoService: geoService,
	}
}

func parseQuery(r *http.Request) (geoservice.Query, error) {
	var q geoservice.Query

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return q, errors.New("lat is required")
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		return q, errors.New("lng is required")
	}
	q.Lat, q.Lng = lat, lng

	// optional knobs fall back to server defaults when absent
	if raw := r.URL.Query().Get("radius_km"); raw != "" {
		if q.RadiusKm, err = strconv.ParseFloat(raw, 64); err != nil {
			return q, errors.New("radius_km must be a number")
		}
	}
	if raw := r.URL.Query().Get("stale_minutes"); raw != "" {
		if q.StaleMinutes, err = strconv.Atoi(raw); err != nil {
			return q, errors.New("stale_minutes must be an integer")
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if q.Limit, err = strconv.Atoi(raw); err != nil {
			return q, errors.New("limit must be an integer")
		}
	}
	return q, nil
}

// NearbyHelpers godoc
//
//	@Summary		Find helpers near a point
//	@Description	List online, fresh helpers within the radius sorted by distance. Returned positions are masked, never the helpers' true coordinates.
//	@Tags			Geo
//	@Security		BearerAuth
//	@Produce		json
//	@Param			lat			query		number	true	"Origin latitude"
//	@Param			lng			query		number	true	"Origin longitude"
//	@Param			radius_km		query		number	false	"Search radius in km"
//	@Param			stale_minutes	query		int		false	"Location freshness budget in minutes"
//	@Param			limit			query		int		false	"Max results"
//	@Success		200				{object}	dto.NearbyHelpersResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid coordinates"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/geo/helpers [get]
func (h *GeoHandler) NearbyHelpers(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	helpers, err := h.geoService.NearbyHelpers(r.Context(), q)
	if err != nil {
		if errors.Is(err, geoservice.ErrInvalidLocation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.NearbyHelpersResponseDTO{
		Helpers: make([]dto.NearbyHelperDTO, len(helpers)),
		Count:   len(helpers),
	}
	for i, helper := range helpers {
		response.Helpers[i] = dto.NearbyHelperDTO{
			HelperID:   helper.HelperID,
			DistanceKm: helper.DistanceKm,
			Grade:      helper.Grade,
			Rating:     helper.Rating,
			Lat:        helper.Lat,
			Lng:        helper.Lng,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// NearbyErrands godoc
//
//	@Summary		Find open errands near a point
//	@Description	List OPEN errands within the radius sorted by distance to their pickup point.
//	@Tags			Geo
//	@Security		BearerAuth
//	@Produce		json
//	@Param			lat			query		number	true	"Origin latitude"
//	@Param			lng			query		number	true	"Origin longitude"
//	@Param			radius_km		query		number	false	"Search radius in km"
//	@Param			stale_minutes	query		int		false	"Location freshness budget in minutes"
//	@Param			limit			query		int		false	"Max results"
//	@Success		200				{object}	dto.NearbyErrandsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid coordinates"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/geo/errands [get]
func (h *GeoHandler) NearbyErrands(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	errands, err := h.geoService.NearbyErrands(r.Context(), q)
	if err != nil {
		if errors.Is(err, geoservice.ErrInvalidLocation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.NearbyErrandsResponseDTO{
		Errands: make([]dto.NearbyErrandDTO, len(errands)),
		Count:   len(errands),
	}
	for i, errand := range errands {
		response.Errands[i] = dto.NearbyErrandDTO{
			ErrandID:      errand.ErrandID,
			DistanceKm:    errand.DistanceKm,
			Category:      errand.Category,
			TotalPrice:    errand.TotalPrice,
			PickupAddress: errand.PickupAddress,
			PickupLat:     errand.PickupLat,
			PickupLng:     errand.PickupLng,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
