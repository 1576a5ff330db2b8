package handler

import (
	"github.com/newsdesk/news-api/internal/core/ports"
)

func toCreateNewsInput(req createNewsRequest) ports.CreateNewsInput {
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}
	return ports.CreateNewsInput{
		Title:         req.Title,
		Content:       req.Content,
		Author:        req.Author,
		UserID:        req.UserID,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   published,
		Summary:       req.Summary,
		ImageURL:      req.ImageURL,
		PublishedDate: req.PublishedDate,
	}
}

func toUpdateNewsInput(req updateNewsRequest) ports.UpdateNewsInput {
	return ports.UpdateNewsInput{
		Title:         req.Title,
		Content:       req.Content,
		Author:        req.Author,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
		Summary:       req.Summary,
		ImageURL:      req.ImageURL,
		PublishedDate: req.PublishedDate,
	}
}
