package transport

import (
	"encoding/json"
	"net/http"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
	validatorx "github.com/worksy/worksy-api/utils/validator"
)

// GetBookings handler
// @Summary List bookings
// @Description List bookings for a customer or a provider
// @Tags Bookings
// @Produce json
// @Param userId query string false "Customer ID"
// @Param providerId query string false "Provider ID"
// @Param status query string false "Status filter"
// @Success 200 {array} model.BookingEntity
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (s *RestHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := &model.BookingFilter{
		CustomerID: q.Get("userId"),
		ProviderID: q.Get("providerId"),
		Status:     q.Get("status"),
	}

	bookings, err := s.BookingApp.List(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// CreateBooking handler
// @Summary Create booking
// @Description Schedule a service; descriptive fields are snapshotted
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body model.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} model.BookingEntity
// @Failure 400 {object} map[string]string
// @Router /bookings [post]
func (s *RestHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	booking, err := s.BookingApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// UpdateBooking handler
// @Summary Update booking
// @Description Merge partial fields onto an existing booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id query string true "Booking ID"
// @Param request body model.BookingUpdate true "Partial fields"
// @Success 200 {object} model.BookingEntity
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [put]
func (s *RestHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Booking ID is required"))
		return
	}

	var upd model.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&upd); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	booking, err := s.BookingApp.Update(ctx, id, &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// DeleteBooking handler
// @Summary Delete booking
// @Description Hard-delete a booking
// @Tags Bookings
// @Produce json
// @Param id query string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /bookings [delete]
func (s *RestHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Booking ID is required"))
		return
	}

	if err := s.BookingApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking deleted successfully"})
}
