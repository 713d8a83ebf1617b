package repository

import (
	"train-reservation/internal/model"
	apperrors "train-reservation/pkg/app_errors"
)

type UserRepository interface {
	List() []*model.User
	Count() int
	FindByLogin(login string) (*model.User, error)
	Create(login, password string, role model.Role) *model.User
}

type UserRepositoryImpl struct {
	users []*model.User
}

func NewUserRepository(initial []*model.User) UserRepository {
	return &UserRepositoryImpl{
		users: initial,
	}
}

func (r *UserRepositoryImpl) List() []*model.User {
	return r.users
}

func (r *UserRepositoryImpl) Count() int {
	return len(r.users)
}

func (r *UserRepositoryImpl) FindByLogin(login string) (*model.User, error) {
	for _, user := range r.users {
		if user.Login == login {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Create appends an account with id = highest existing id + 1. Login
// uniqueness is the caller's responsibility (checked in AuthService).
func (r *UserRepositoryImpl) Create(login, password string, role model.Role) *model.User {
	maxID := 0
	for _, user := range r.users {
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	user := &model.User{
		ID:       maxID + 1,
		Login:    login,
		Password: password,
		Role:     role,
	}
	r.users = append(r.users, user)
	return user
}
