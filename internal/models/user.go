package models

import "time"

// User represents a registered member of the movie catalog. Accounts are
// removed permanently on deletion, so there is no soft-delete column.
type User struct {
	ID       string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string     `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=5,alphanum"`
	Password string     `json:"-" gorm:"type:varchar(255)" validate:"required"` // Never serialized
	Email    string     `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Birthday *time.Time `json:"birthday,omitempty"`
	// FavoriteMovies is an ordered list of movie IDs. The list may contain
	// duplicates; removal strips every occurrence.
	FavoriteMovies []string  `json:"favorite_movies" gorm:"serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
