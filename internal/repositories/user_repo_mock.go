package repositories

import (
	"fmt"
	"sync"

	"myflix/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User // keyed by username
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("failed to create user: username %s already exists", user.Username)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Username] = *user
	return nil
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		userList = append(userList, u)
	}
	return userList, nil
}

// GetByUsername returns a user by username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user with username %s not found", username)
	}
	return &user, nil
}

// Update replaces an existing user. The user may change their username, so
// the record is re-keyed when it differs.
func (r *MockUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, existing := range r.users {
		if existing.ID == user.ID {
			delete(r.users, name)
			r.users[user.Username] = *user
			return nil
		}
	}
	return fmt.Errorf("user with ID %s not found for update", user.ID)
}

// Delete removes a user by username.
func (r *MockUserRepository) Delete(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return fmt.Errorf("user with username %s not found for deletion", username)
	}
	delete(r.users, username)
	return nil
}

// AddFavorite appends a movie ID to the user's favorites list.
func (r *MockUserRepository) AddFavorite(username, movieID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user with username %s not found", username)
	}
	user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	r.users[username] = user
	return &user, nil
}

// RemoveFavorite removes every occurrence of a movie ID from the favorites list.
func (r *MockUserRepository) RemoveFavorite(username, movieID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user with username %s not found", username)
	}
	kept := make([]string, 0, len(user.FavoriteMovies))
	for _, id := range user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovies = kept
	r.users[username] = user
	return &user, nil
}
