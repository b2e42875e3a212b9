package model

import "time"

// ServiceEntity represents a service offering owned by a provider
type ServiceEntity struct {
	ID           string     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	Category     string     `db:"category" json:"category"`
	Price        float64    `db:"price" json:"price"`
	Location     string     `db:"location" json:"location"`
	ProviderID   string     `db:"provider_id" json:"providerId"`
	ProviderName string     `db:"provider_name" json:"providerName"`
	Images       StringList `db:"images" json:"images"`
	Availability string     `db:"availability" json:"availability"`
	Rating       float64    `db:"rating" json:"rating"`
	ReviewCount  int        `db:"review_count" json:"reviewCount"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// ServiceFilter narrows a catalog listing. Zero values mean the predicate is
// not applied. Location is matched case-insensitively as a substring after
// the primary query.
type ServiceFilter struct {
	Category   string
	ProviderID string
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	Location   string
}

// CreateServiceRequest for publishing a new offering
type CreateServiceRequest struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	Category     string     `json:"category" validate:"required"`
	Price        *Decimal   `json:"price" validate:"required"`
	ProviderID   string     `json:"providerId" validate:"required"`
	ProviderName string     `json:"providerName"`
	Location     string     `json:"location"`
	Images       StringList `json:"images"`
	Availability string     `json:"availability"`
	Rating       Decimal    `json:"rating"`
	ReviewCount  FlexInt    `json:"reviewCount"`
}

// ServiceUpdate carries the partial fields of an offering update.
type ServiceUpdate struct {
	Title        *string     `json:"title"`
	Description  *string     `json:"description"`
	Category     *string     `json:"category"`
	Price        *Decimal    `json:"price"`
	Location     *string     `json:"location"`
	ProviderName *string     `json:"providerName"`
	Images       *StringList `json:"images"`
	Availability *string     `json:"availability"`
	Rating       *Decimal    `json:"rating"`
	ReviewCount  *FlexInt    `json:"reviewCount"`
}

func (u *ServiceUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Price == nil && u.Location == nil && u.ProviderName == nil &&
		u.Images == nil && u.Availability == nil && u.Rating == nil && u.ReviewCount == nil
}
