package handler

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"train-reservation/internal/model"
	"train-reservation/internal/service"
	"train-reservation/pkg/logger"
)

// Session is the top-level console loop: login, registration, role dispatch
// and the final save on exit.
type Session struct {
	prompter  *Prompter
	auth      service.AuthService
	admin     *AdminHandler
	passenger *PassengerHandler
	persist   *Persister
	log       *zap.Logger
}

func NewSession(
	prompter *Prompter,
	auth service.AuthService,
	admin *AdminHandler,
	passenger *PassengerHandler,
	persist *Persister,
) *Session {
	return &Session{
		prompter:  prompter,
		auth:      auth,
		admin:     admin,
		passenger: passenger,
		persist:   persist,
		log:       logger.WithComponent("session"),
	}
}

func (s *Session) Run(ctx context.Context) {
	for {
		s.prompter.Printf("\n=== RAILWAY RESERVATION SYSTEM ===\n")
		s.prompter.Printf("1. Log in\n")
		s.prompter.Printf("2. Register (new passenger)\n")
		s.prompter.Printf("3. Save and exit\n")

		switch s.prompter.ReadInt("Choose: ") {
		case 1:
			s.login(ctx)
		case 2:
			s.register(ctx)
		case 3:
			s.prompter.Printf("Saving data...\n")
			s.persist.All(ctx)
			return
		default:
			s.prompter.Printf("Invalid option.\n")
		}
	}
}

func (s *Session) login(ctx context.Context) {
	login := s.prompter.ReadLine("Login: ")
	password := s.prompter.ReadLine("Password: ")

	user, err := s.auth.Login(login, password)
	if err != nil {
		s.prompter.Printf("Wrong login or password!\n")
		return
	}

	sessionID := uuid.New().String()
	s.log.Info("session started",
		zap.String("session_id", sessionID),
		zap.String("login", user.Login),
		zap.String("role", string(user.Role)))

	switch user.Role {
	case model.RoleAdmin:
		s.admin.Run(ctx, user)
	case model.RolePassenger:
		s.passenger.Run(ctx, user)
	}

	s.log.Info("session ended", zap.String("session_id", sessionID))
}

func (s *Session) register(ctx context.Context) {
	s.prompter.Printf("\n--- NEW USER REGISTRATION ---\n")

	var login string
	for {
		login = s.prompter.ReadLine("Enter a login: ")
		if login == "" {
			s.prompter.Printf("Error: the login cannot be empty.\n")
			continue
		}
		if s.auth.LoginTaken(login) {
			s.prompter.Printf("Error: that login is already taken. Pick another one.\n")
			continue
		}
		break
	}

	for {
		password := s.prompter.ReadLine("Enter a password: ")
		if _, err := s.auth.Register(login, password); err != nil {
			s.prompter.Printf("The password must be at least 3 characters long.\n")
			continue
		}
		break
	}

	s.persist.Users(ctx)
	s.prompter.Printf("SUCCESS! Account created. You can log in now.\n")
}
