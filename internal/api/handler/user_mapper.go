package handler

import (
	"github.com/newsdesk/news-api/internal/core/ports"
)

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Role:            req.Role,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		DateOfBirth:     req.DateOfBirth,
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Username:        req.Username,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Role:            req.Role,
		IsActive:        req.IsActive,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		DateOfBirth:     req.DateOfBirth,
	}
}
