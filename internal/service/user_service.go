package service

import (
	"context"

	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// MsgUserNotFound is the rejection message for a missing user
const MsgUserNotFound = "User Not Found"

// userService is the concrete implementation of UserService
type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(users repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// List returns all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// GetByUsername returns one user or a NotFound rejection
func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound(MsgUserNotFound)
	}
	return user, nil
}
