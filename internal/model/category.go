package model

import "time"

type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Type      string    `json:"type" gorm:"not null;uniqueIndex"` // "Science", "Art", ...
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultCategories are seeded into an empty categories table.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}
