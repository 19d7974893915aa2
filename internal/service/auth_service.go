package service

import (
	"fmt"

	"studycraft/internal/model"
	"studycraft/internal/repository"
)

// AuthService resolves the user a request acts on behalf of. Controllers
// never hardcode a user id; they ask this collaborator. The current
// implementation always resolves the seeded demo account - the seam where
// session/token auth would plug in.
type AuthService interface {
	CurrentUser() (*model.User, error)
}

type demoAuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &demoAuthService{userRepo: userRepo}
}

func (s *demoAuthService) CurrentUser() (*model.User, error) {
	user, err := s.userRepo.FindByUsername(DemoUsername)
	if err != nil {
		return nil, fmt.Errorf("demo user not available: %w", err)
	}
	return user, nil
}
