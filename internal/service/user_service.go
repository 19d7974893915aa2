package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studycraft/internal/model"
	"studycraft/internal/repository"
)

// DemoUsername is the seeded account every request runs as until real
// authentication lands.
const DemoUsername = "demo"

const demoPassword = "password"

type UserService interface {
	Register(username, password string) (*model.User, error)
	// EnsureDemoUser creates the demo account if it does not exist yet.
	// Idempotent; invoked once at process startup.
	EnsureDemoUser() error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{Username: username, Password: string(hash)}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("database error creating user %q: %w", username, err)
	}
	return &user, nil
}

func (s *userService) EnsureDemoUser() error {
	_, err := s.userRepo.FindByUsername(DemoUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error looking up demo user: %w", err)
	}

	if _, err := s.Register(DemoUsername, demoPassword); err != nil {
		return err
	}
	log.Info().Str("username", DemoUsername).Msg("Seeded demo user")
	return nil
}
