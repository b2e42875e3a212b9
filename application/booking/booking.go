package booking

import (
	"context"
	"time"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	bookingrepo "github.com/worksy/worksy-api/repository/booking"
	cerr "github.com/worksy/worksy-api/utils/errors"
	"github.com/worksy/worksy-api/utils/logger"
	"go.uber.org/zap"
)

type BookingApp interface {
	List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingEntity, error)
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingEntity, error)
	Update(ctx context.Context, id string, upd *model.BookingUpdate) (*model.BookingEntity, error)
	Delete(ctx context.Context, id string) error
}

type BookingAppImpl struct {
	bookingRepo bookingrepo.BookingRepository
}

func NewBookingApp(bookingRepo bookingrepo.BookingRepository) BookingApp {
	return &BookingAppImpl{
		bookingRepo: bookingRepo,
	}
}

func (s *BookingAppImpl) List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingEntity, error) {
	if filter.CustomerID == "" && filter.ProviderID == "" {
		return nil, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "userId or providerId is required")
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListBookings] err bookingRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to fetch bookings")
	}
	return bookings, nil
}

func (s *BookingAppImpl) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingEntity, error) {
	status := req.Status
	if status == "" {
		status = constant.BookingStatusPending
	}

	// The descriptive fields are snapshots; they are never resynchronized
	// with the service or user records they came from.
	entity := &model.BookingEntity{
		ServiceID:     req.ServiceID,
		CustomerID:    req.CustomerID,
		ProviderID:    req.ProviderID,
		CustomerName:  req.CustomerName,
		ProviderName:  req.ProviderName,
		ServiceTitle:  req.ServiceTitle,
		Price:         float64(req.Price),
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Address:       req.Address,
		Phone:         req.Phone,
		Notes:         req.Notes,
		Status:        status,
	}

	entity, err := s.bookingRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateBooking] err bookingRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to create booking")
	}
	return entity, nil
}

func (s *BookingAppImpl) Update(ctx context.Context, id string, upd *model.BookingUpdate) (*model.BookingEntity, error) {
	existing, err := s.bookingRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateBooking] err bookingRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update booking")
	}
	if existing == nil {
		return nil, cerr.SetCustomErrorMessage(constant.ErrNotFound, "Booking not found")
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := s.bookingRepo.Update(ctx, id, upd, now); err != nil {
		logger.Error("[UpdateBooking] err bookingRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update booking")
	}

	updated, err := s.bookingRepo.Get(ctx, id)
	if err != nil || updated == nil {
		logger.Error("[UpdateBooking] err bookingRepo.Get after update", zap.Any("error", err))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update booking")
	}
	return updated, nil
}

func (s *BookingAppImpl) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteBooking] err bookingRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to delete booking")
	}
	return nil
}
