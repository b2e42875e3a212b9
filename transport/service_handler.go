package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
	validatorx "github.com/worksy/worksy-api/utils/validator"
)

// GetServices handler
// @Summary List services
// @Description List service offerings with optional filters, or fetch one by id
// @Tags Services
// @Produce json
// @Param id query string false "Service ID"
// @Param category query string false "Category (exact match)"
// @Param providerId query string false "Provider ID (exact match)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param rating query number false "Minimum rating (inclusive)"
// @Param location query string false "Location substring (case-insensitive)"
// @Success 200 {array} model.ServiceEntity
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /services [get]
func (s *RestHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if id := q.Get("id"); id != "" {
		svc, err := s.CatalogApp.Get(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, svc)
		return
	}

	filter := &model.ServiceFilter{
		Category:   q.Get("category"),
		ProviderID: q.Get("providerId"),
		Location:   q.Get("location"),
	}

	var err error
	if filter.MinPrice, err = parseFloatParam(q.Get("minPrice")); err != nil {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid minPrice"))
		return
	}
	if filter.MaxPrice, err = parseFloatParam(q.Get("maxPrice")); err != nil {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid maxPrice"))
		return
	}
	if filter.MinRating, err = parseFloatParam(q.Get("rating")); err != nil {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid rating"))
		return
	}

	services, err := s.CatalogApp.List(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// CreateService handler
// @Summary Create service
// @Description Publish a new service offering
// @Tags Services
// @Accept json
// @Produce json
// @Param request body model.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} model.ServiceEntity
// @Failure 400 {object} map[string]string
// @Router /services [post]
func (s *RestHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	svc, err := s.CatalogApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// UpdateService handler
// @Summary Update service
// @Description Merge partial fields onto an existing service offering
// @Tags Services
// @Accept json
// @Produce json
// @Param id query string true "Service ID"
// @Param request body model.ServiceUpdate true "Partial fields"
// @Success 200 {object} model.ServiceEntity
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services [put]
func (s *RestHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Service ID is required"))
		return
	}

	var upd model.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	svc, err := s.CatalogApp.Update(ctx, id, &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// DeleteService handler
// @Summary Delete service
// @Description Hard-delete a service offering
// @Tags Services
// @Produce json
// @Param id query string true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /services [delete]
func (s *RestHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Service ID is required"))
		return
	}

	if err := s.CatalogApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}

func parseFloatParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
