package services

import (
	"myflix/internal/models"
	"myflix/internal/repositories"
)

// MovieService handles business logic related to the movie catalog.
type MovieService struct {
	repo repositories.MovieRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repositories.MovieRepository) *MovieService {
	return &MovieService{
		repo: repo,
	}
}

// GetAllMovies retrieves the full catalog.
func (s *MovieService) GetAllMovies() ([]models.Movie, error) {
	return s.repo.GetAll()
}

// GetMovieByTitle retrieves a single movie by its exact title.
func (s *MovieService) GetMovieByTitle(title string) (*models.Movie, error) {
	return s.repo.GetByTitle(title)
}

// GetGenreByName returns the genre details from the first movie carrying
// a genre with the given name.
func (s *MovieService) GetGenreByName(name string) (*models.Genre, error) {
	movie, err := s.repo.GetByGenreName(name)
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirectorByName returns the director details from the first movie
// directed by someone with the given name.
func (s *MovieService) GetDirectorByName(name string) (*models.Director, error) {
	movie, err := s.repo.GetByDirectorName(name)
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}
