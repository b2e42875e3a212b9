package transport

import (
	"encoding/json"
	"net/http"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
	validatorx "github.com/worksy/worksy-api/utils/validator"
)

// GetUsers handler
// @Summary Get users
// @Description Get all users, or a single user when id is given
// @Tags Users
// @Produce json
// @Param id query string false "User ID"
// @Success 200 {array} model.UserEntity
// @Failure 404 {object} map[string]string
// @Router /users [get]
func (s *RestHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if id := r.URL.Query().Get("id"); id != "" {
		user, err := s.UserApp.Get(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
		return
	}

	users, err := s.UserApp.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUser handler
// @Summary Create user
// @Description Create a new user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Create User Request"
// @Success 201 {object} model.UserEntity
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	user, err := s.UserApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// UpdateUser handler
// @Summary Update user
// @Description Merge partial fields onto an existing user
// @Tags Users
// @Accept json
// @Produce json
// @Param id query string true "User ID"
// @Param request body model.UserUpdate true "Partial fields"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "User ID is required"))
		return
	}

	var upd model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&upd); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	user, err := s.UserApp.Update(ctx, id, &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser handler
// @Summary Delete user
// @Description Hard-delete a user profile
// @Tags Users
// @Produce json
// @Param id query string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "User ID is required"))
		return
	}

	if err := s.UserApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
