package repositories

import "myflix/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(username string) error
	AddFavorite(username, movieID string) (*models.User, error)
	RemoveFavorite(username, movieID string) (*models.User, error)
}
