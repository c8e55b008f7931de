package repositories

import (
	"fmt"
	"sync"

	"myflix/internal/models"

	"github.com/google/uuid"
)

// MockMovieRepository is an in-memory implementation of MovieRepository.
type MockMovieRepository struct {
	movies map[string]models.Movie
	order  []string
	mu     sync.RWMutex
}

// NewMockMovieRepository creates a new instance of MockMovieRepository.
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies: make(map[string]models.Movie),
	}
}

// GetAll returns all movies in insertion order.
func (r *MockMovieRepository) GetAll() ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movieList := make([]models.Movie, 0, len(r.movies))
	for _, id := range r.order {
		movieList = append(movieList, r.movies[id])
	}
	return movieList, nil
}

// GetByTitle returns a movie by its exact title.
func (r *MockMovieRepository) GetByTitle(title string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if m := r.movies[id]; m.Title == title {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("movie with title %s not found", title)
}

// GetByGenreName returns the first movie whose genre matches the name.
func (r *MockMovieRepository) GetByGenreName(name string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if m := r.movies[id]; m.Genre.Name == name {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("genre with name %s not found", name)
}

// GetByDirectorName returns the first movie whose director matches the name.
func (r *MockMovieRepository) GetByDirectorName(name string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if m := r.movies[id]; m.Director.Name == name {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("director with name %s not found", name)
}

// Create adds a new movie.
func (r *MockMovieRepository) Create(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if _, ok := r.movies[movie.ID]; !ok {
		r.order = append(r.order, movie.ID)
	}
	r.movies[movie.ID] = *movie
	return nil
}
