package repositories

import (
	"myflix/internal/models"
)

// MovieRepository defines the interface for movie catalog data access.
type MovieRepository interface {
	GetAll() ([]models.Movie, error)
	GetByTitle(title string) (*models.Movie, error)
	GetByGenreName(name string) (*models.Movie, error)
	GetByDirectorName(name string) (*models.Movie, error)
	Create(movie *models.Movie) error
}
