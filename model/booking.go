package model

import "time"

// BookingEntity links a customer, a provider and a service offering. The
// descriptive fields are snapshots taken at creation time and are never
// resynchronized with their source records.
type BookingEntity struct {
	ID            string    `db:"id" json:"id"`
	ServiceID     string    `db:"service_id" json:"serviceId"`
	CustomerID    string    `db:"customer_id" json:"customerId"`
	ProviderID    string    `db:"provider_id" json:"providerId"`
	CustomerName  string    `db:"customer_name" json:"customerName"`
	ProviderName  string    `db:"provider_name" json:"providerName"`
	ServiceTitle  string    `db:"service_title" json:"serviceTitle"`
	Price         float64   `db:"price" json:"price"`
	ScheduledDate string    `db:"scheduled_date" json:"scheduledDate"`
	ScheduledTime string    `db:"scheduled_time" json:"scheduledTime"`
	Address       string    `db:"address" json:"address"`
	Phone         string    `db:"phone" json:"phone"`
	Notes         string    `db:"notes" json:"notes"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// BookingFilter narrows a booking listing. At least one of CustomerID or
// ProviderID must be set.
type BookingFilter struct {
	CustomerID string
	ProviderID string
	Status     string
}

// CreateBookingRequest for scheduling a service
type CreateBookingRequest struct {
	ServiceID     string         `json:"serviceId" validate:"required"`
	CustomerID    string         `json:"customerId" validate:"required"`
	ProviderID    string         `json:"providerId" validate:"required"`
	ScheduledDate string         `json:"scheduledDate" validate:"required"`
	ScheduledTime string         `json:"scheduledTime" validate:"required"`
	CustomerName  string         `json:"customerName"`
	ProviderName  string         `json:"providerName"`
	ServiceTitle  string         `json:"serviceTitle"`
	Price         LenientDecimal `json:"price"`
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	Notes         string         `json:"notes"`
	Status        string         `json:"status" validate:"omitempty,oneof=pending confirmed in-progress completed cancelled"`
}

// BookingUpdate carries the partial fields of a booking update. Status values
// are restricted to the five-value enum; transitions between them are not.
type BookingUpdate struct {
	ServiceID     *string         `json:"serviceId"`
	CustomerName  *string         `json:"customerName"`
	ProviderName  *string         `json:"providerName"`
	ServiceTitle  *string         `json:"serviceTitle"`
	Price         *LenientDecimal `json:"price"`
	ScheduledDate *string         `json:"scheduledDate"`
	ScheduledTime *string         `json:"scheduledTime"`
	Address       *string         `json:"address"`
	Phone         *string         `json:"phone"`
	Notes         *string         `json:"notes"`
	Status        *string         `json:"status" validate:"omitempty,oneof=pending confirmed in-progress completed cancelled"`
}

func (u *BookingUpdate) Empty() bool {
	return u.ServiceID == nil && u.CustomerName == nil && u.ProviderName == nil &&
		u.ServiceTitle == nil && u.Price == nil && u.ScheduledDate == nil &&
		u.ScheduledTime == nil && u.Address == nil && u.Phone == nil &&
		u.Notes == nil && u.Status == nil
}
