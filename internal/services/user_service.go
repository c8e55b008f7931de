package services

import (
	"fmt"
	"log"
	"time"

	"myflix/internal/models"
	"myflix/internal/repositories"
	"myflix/pkg/rabbitmq"
)

// ProfileUpdate carries the replacement fields for a user profile. All four
// fields are replaced wholesale on update.
type ProfileUpdate struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// UserService handles business logic related to user profiles and favorites.
type UserService struct {
	userRepo repositories.UserRepository
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService. mqClient may be nil, in which
// case lifecycle events are not published.
func NewUserService(userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByUsername retrieves a single user by username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

// UpdateUser replaces the profile fields of the user identified by username.
// The new password is hashed before storage, the same as registration.
func (s *UserService) UpdateUser(username string, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := HashPassword(update.Password)
	if err != nil {
		return nil, err
	}

	user.Username = update.Username
	user.Password = hashedPassword
	user.Email = update.Email
	user.Birthday = update.Birthday

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", username, err)
	}
	return user, nil
}

// DeleteUser permanently removes the user identified by username.
func (s *UserService) DeleteUser(username string) error {
	if err := s.userRepo.Delete(username); err != nil {
		return err
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishUserEvent("user.deleted", map[string]interface{}{
			"username": username,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish deleted event for user %s: %v", username, err)
		}
	}
	return nil
}

// AddFavorite appends a movie ID to the user's favorites list. Duplicates are
// kept: adding the same movie twice lists it twice.
func (s *UserService) AddFavorite(username, movieID string) (*models.User, error) {
	return s.userRepo.AddFavorite(username, movieID)
}

// RemoveFavorite removes every occurrence of a movie ID from the user's
// favorites list. Removing an absent movie is a no-op.
func (s *UserService) RemoveFavorite(username, movieID string) (*models.User, error) {
	return s.userRepo.RemoveFavorite(username, movieID)
}
