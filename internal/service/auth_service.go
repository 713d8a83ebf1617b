package service

import (
	"go.uber.org/zap"

	"train-reservation/internal/model"
	"train-reservation/internal/repository"
	apperrors "train-reservation/pkg/app_errors"
	"train-reservation/pkg/logger"
)

const minPasswordLength = 3

type AuthService interface {
	Login(login, password string) (*model.User, error)
	// Register creates a passenger account. Admin accounts only come from
	// seeding or from the users file directly.
	Register(login, password string) (*model.User, error)
	LoginTaken(login string) bool
	// EnsureSeedAdmin creates the configured admin account when the user
	// store is empty and reports whether it did.
	EnsureSeedAdmin(login, password string) bool
}

type AuthServiceImpl struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &AuthServiceImpl{
		users: users,
		log:   logger.WithComponent("auth_service"),
	}
}

// Login is a plain equality check over the stored clear-text credentials.
// Wrong login and wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(login, password string) (*model.User, error) {
	user, err := s.users.FindByLogin(login)
	if err != nil || user.Password != password {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.log.Info("user logged in", zap.String("login", login), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *AuthServiceImpl) Register(login, password string) (*model.User, error) {
	if s.LoginTaken(login) {
		return nil, apperrors.ErrLoginTaken
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	user := s.users.Create(login, password, model.RolePassenger)
	s.log.Info("passenger registered", zap.String("login", login), zap.Int("id", user.ID))
	return user, nil
}

func (s *AuthServiceImpl) LoginTaken(login string) bool {
	_, err := s.users.FindByLogin(login)
	return err == nil
}

func (s *AuthServiceImpl) EnsureSeedAdmin(login, password string) bool {
	if s.users.Count() > 0 {
		return false
	}
	user := s.users.Create(login, password, model.RoleAdmin)
	s.log.Info("seed admin created", zap.String("login", login), zap.Int("id", user.ID))
	return true
}
