package model

import "time"

// UserEntity represents a user profile record
type UserEntity struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	UserType  string    `db:"user_type" json:"userType"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateUserRequest for creating a user profile
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	UserType string `json:"userType" validate:"required,oneof=consumer provider"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UserUpdate carries the partial fields of a profile update. Nil means the
// field is left untouched.
type UserUpdate struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	UserType *string `json:"userType" validate:"omitempty,oneof=consumer provider"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// Empty reports whether the update carries no fields.
func (u *UserUpdate) Empty() bool {
	return u.Email == nil && u.Name == nil && u.UserType == nil && u.Phone == nil && u.Address == nil
}
