package services_test

import (
	"fmt"
	"testing"

	"myflix/internal/models"
	"myflix/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMovieRepository is a mock implementation of repositories.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetAll() ([]models.Movie, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByTitle(title string) (*models.Movie, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByGenreName(name string) (*models.Movie, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByDirectorName(name string) (*models.Movie, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(movie *models.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func TestMovieService_GetAllMovies(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	service := services.NewMovieService(mockRepo)

	catalog := []models.Movie{
		{ID: "m1", Title: "Frozen"},
		{ID: "m2", Title: "Star Wars"},
	}
	mockRepo.On("GetAll").Return(catalog, nil).Once()

	movies, err := service.GetAllMovies()
	assert.NoError(t, err)
	assert.Len(t, movies, 2)
	assert.Equal(t, "Frozen", movies[0].Title)
	mockRepo.AssertExpectations(t)
}

func TestMovieService_GetMovieByTitle(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	service := services.NewMovieService(mockRepo)

	movie := &models.Movie{ID: "m1", Title: "Frozen"}
	mockRepo.On("GetByTitle", "Frozen").Return(movie, nil).Once()

	got, err := service.GetMovieByTitle("Frozen")
	assert.NoError(t, err)
	assert.Equal(t, "m1", got.ID)

	mockRepo.On("GetByTitle", "Unknown").Return(nil, fmt.Errorf("movie with title Unknown not found")).Once()
	_, err = service.GetMovieByTitle("Unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestMovieService_GetGenreByName(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	service := services.NewMovieService(mockRepo)

	movie := &models.Movie{
		ID:    "m1",
		Title: "Frozen",
		Genre: models.Genre{Name: "Animation", Description: "Films created from drawn or computer-generated images."},
	}
	mockRepo.On("GetByGenreName", "Animation").Return(movie, nil).Once()

	// Only the genre sub-object comes back, not the movie carrying it.
	genre, err := service.GetGenreByName("Animation")
	assert.NoError(t, err)
	assert.Equal(t, "Animation", genre.Name)
	assert.NotEmpty(t, genre.Description)

	mockRepo.On("GetByGenreName", "Polka").Return(nil, fmt.Errorf("genre with name Polka not found")).Once()
	_, err = service.GetGenreByName("Polka")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMovieService_GetDirectorByName(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	service := services.NewMovieService(mockRepo)

	movie := &models.Movie{
		ID:       "m2",
		Title:    "Star Wars",
		Director: models.Director{Name: "George Lucas", Bio: "American filmmaker."},
	}
	mockRepo.On("GetByDirectorName", "George Lucas").Return(movie, nil).Once()

	director, err := service.GetDirectorByName("George Lucas")
	assert.NoError(t, err)
	assert.Equal(t, "George Lucas", director.Name)
	assert.Equal(t, "American filmmaker.", director.Bio)

	mockRepo.On("GetByDirectorName", "Nobody").Return(nil, fmt.Errorf("director with name Nobody not found")).Once()
	_, err = service.GetDirectorByName("Nobody")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
