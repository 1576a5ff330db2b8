package handler

import "time"

type createNewsRequest struct {
	Title         string     `json:"title"         validate:"required,min=5,max=200"`
	Content       string     `json:"content"       validate:"required,min=10,max=10000"`
	Author        string     `json:"author"        validate:"required,max=100"`
	UserID        string     `json:"userId"        validate:"omitempty,len=24,hexadecimal"`
	Category      string     `json:"category"      validate:"max=100"`
	Tags          []string   `json:"tags"`
	IsPublished   *bool      `json:"isPublished"` // nil = published, the historical default
	Summary       string     `json:"summary"       validate:"max=500"`
	ImageURL      string     `json:"imageUrl"      validate:"omitempty,url"`
	PublishedDate *time.Time `json:"publishedDate"`
}

type updateNewsRequest struct {
	Title         string     `json:"title"         validate:"omitempty,min=5,max=200"`
	Content       string     `json:"content"       validate:"omitempty,min=10,max=10000"`
	Author        string     `json:"author"        validate:"omitempty,max=100"`
	Category      string     `json:"category"      validate:"omitempty,max=100"`
	Tags          []string   `json:"tags"`
	IsPublished   *bool      `json:"isPublished"`
	Summary       string     `json:"summary"       validate:"omitempty,max=500"`
	ImageURL      *string    `json:"imageUrl"      validate:"omitempty,url"`
	PublishedDate *time.Time `json:"publishedDate"`
}
