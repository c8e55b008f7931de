package repositories

import (
	"fmt"

	"myflix/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

// GetAll retrieves the entire movie catalog from the database. The slice is
// non-nil even when the table is empty so an empty catalog serializes as [].
func (r *GORMMovieRepository) GetAll() ([]models.Movie, error) {
	movies := []models.Movie{}
	if err := r.db.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all movies: %w", err)
	}
	return movies, nil
}

// GetByTitle retrieves a single movie by its exact title.
func (r *GORMMovieRepository) GetByTitle(title string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "title = ?", title).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("movie with title %s not found", title)
		}
		return nil, fmt.Errorf("failed to get movie by title %s: %w", title, err)
	}
	return &movie, nil
}

// GetByGenreName retrieves the first movie whose embedded genre matches the name.
func (r *GORMMovieRepository) GetByGenreName(name string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "genre_name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("genre with name %s not found", name)
		}
		return nil, fmt.Errorf("failed to get movie by genre %s: %w", name, err)
	}
	return &movie, nil
}

// GetByDirectorName retrieves the first movie whose embedded director matches the name.
func (r *GORMMovieRepository) GetByDirectorName(name string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "director_name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("director with name %s not found", name)
		}
		return nil, fmt.Errorf("failed to get movie by director %s: %w", name, err)
	}
	return &movie, nil
}

// Create adds a new movie to the catalog. Movies are normally seeded at
// startup rather than created through the API.
func (r *GORMMovieRepository) Create(movie *models.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if err := r.db.Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}
