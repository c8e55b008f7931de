package models

import "time"

// Genre describes the genre a movie belongs to. It is embedded in Movie
// rather than stored as its own table.
type Genre struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// Director describes the director of a movie, embedded in Movie.
type Director struct {
	Name  string     `json:"name" validate:"omitempty,max=100"`
	Bio   string     `json:"bio" validate:"omitempty,max=2000"`
	Birth *time.Time `json:"birth,omitempty"`
	Death *time.Time `json:"death,omitempty"`
}

// Movie represents a movie in the catalog.
type Movie struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" gorm:"uniqueIndex;type:varchar(255)" validate:"required,max=255"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	Genre       Genre     `json:"genre" gorm:"embedded;embeddedPrefix:genre_"`
	Director    Director  `json:"director" gorm:"embedded;embeddedPrefix:director_"`
	ImagePath   string    `json:"image_path"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
