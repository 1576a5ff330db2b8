package domain

import (
	"errors"
	"time"
)

var ErrNewsNotFound = errors.New("news not found")

// News is a single article. UserID links the article to its owning account
// when known; Author is the display name shown to readers.
type News struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	UserID        string    `json:"userId,omitempty"`
	PublishedDate time.Time `json:"publishedDate"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	IsPublished   bool      `json:"isPublished"`
	Summary       string    `json:"summary"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
