package repositories

import (
	"fmt"

	"myflix/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetAll retrieves all users from the database. The slice is non-nil even
// when the table is empty so an empty collection serializes as [].
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with username %s not found", username)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// Update saves all fields of an existing user.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when no rows were
		// touched, so we check RowsAffected.
		return fmt.Errorf("user with ID %s not found for update", user.ID)
	}
	return nil
}

// Delete permanently removes a user by username.
func (r *GORMUserRepository) Delete(username string) error {
	res := r.db.Delete(&models.User{}, "username = ?", username)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with username %s not found for deletion", username)
	}
	return nil
}

// AddFavorite appends a movie ID to the user's favorites list. Duplicates are
// kept as-is.
func (r *GORMUserRepository) AddFavorite(username, movieID string) (*models.User, error) {
	user, err := r.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	if err := r.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveFavorite removes every occurrence of a movie ID from the user's
// favorites list. Removing an absent ID is a no-op.
func (r *GORMUserRepository) RemoveFavorite(username, movieID string) (*models.User, error) {
	user, err := r.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	kept := user.FavoriteMovies[:0]
	for _, id := range user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovies = kept
	if err := r.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
