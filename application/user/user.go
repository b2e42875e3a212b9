package user

import (
	"context"
	"errors"
	"time"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	userrepo "github.com/worksy/worksy-api/repository/user"
	cerr "github.com/worksy/worksy-api/utils/errors"
	"github.com/worksy/worksy-api/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	List(ctx context.Context) ([]model.UserEntity, error)
	Get(ctx context.Context, id string) (*model.UserEntity, error)
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserEntity, error)
	Update(ctx context.Context, id string, upd *model.UserUpdate) (*model.UserEntity, error)
	Delete(ctx context.Context, id string) error
}

type UserAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		userRepo: userRepo,
	}
}

func (s *UserAppImpl) List(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to fetch users")
	}
	return users, nil
}

func (s *UserAppImpl) Get(ctx context.Context, id string) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to fetch users")
	}
	if user == nil {
		return nil, cerr.SetCustomErrorMessage(constant.ErrNotFound, "User not found")
	}
	return user, nil
}

func (s *UserAppImpl) Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserEntity, error) {
	entity := &model.UserEntity{
		Email:    req.Email,
		Name:     req.Name,
		UserType: req.UserType,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	// Uniqueness is enforced by the datastore's unique email index, so two
	// concurrent creates with the same email cannot both succeed.
	entity, err := s.userRepo.Create(ctx, entity)
	if err != nil {
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, cerr.SetCustomErrorMessage(constant.ErrConflict, "User already exists")
		}
		logger.Error("[CreateUser] err userRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to create user")
	}
	return entity, nil
}

func (s *UserAppImpl) Update(ctx context.Context, id string, upd *model.UserUpdate) (*model.UserEntity, error) {
	existing, err := s.userRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update user")
	}
	if existing == nil {
		return nil, cerr.SetCustomErrorMessage(constant.ErrNotFound, "User not found")
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := s.userRepo.Update(ctx, id, upd, now); err != nil {
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update user")
	}

	updated, err := s.userRepo.Get(ctx, id)
	if err != nil || updated == nil {
		logger.Error("[UpdateUser] err userRepo.Get after update", zap.Any("error", err))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update user")
	}
	return updated, nil
}

func (s *UserAppImpl) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to delete user")
	}
	return nil
}
