package repositories

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"myflix/internal/models"
)

// openTestDB opens a fresh in-memory SQLite database with migrated models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Movie{}, &models.User{}))
	return db
}

func TestGORMRepositories_EmptyGetAllSerializesAsArray(t *testing.T) {
	db := openTestDB(t)

	// An empty catalog must come back as a non-nil slice so clients see []
	// rather than null.
	movieRepo := NewGORMMovieRepository(db)
	movies, err := movieRepo.GetAll()
	assert.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
	b, err := json.Marshal(movies)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	// The same holds for users.
	userRepo := NewGORMUserRepository(db)
	users, err := userRepo.GetAll()
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	b, err = json.Marshal(users)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestGORMUserRepository_FavoritesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewGORMUserRepository(db)

	assert.NoError(t, repo.Create(&models.User{
		Username: "moviefan",
		Email:    "fan@example.com",
		Password: "$2a$10$somehash",
	}))

	// Duplicates persist through the JSON-serialized column.
	_, err := repo.AddFavorite("moviefan", "m1")
	assert.NoError(t, err)
	_, err = repo.AddFavorite("moviefan", "m1")
	assert.NoError(t, err)

	stored, err := repo.GetByUsername("moviefan")
	assert.NoError(t, err)
	assert.Equal(t, []string{"m1", "m1"}, stored.FavoriteMovies)

	// Removal strips every occurrence and persists the emptied list.
	_, err = repo.RemoveFavorite("moviefan", "m1")
	assert.NoError(t, err)
	stored, err = repo.GetByUsername("moviefan")
	assert.NoError(t, err)
	assert.Empty(t, stored.FavoriteMovies)
}
