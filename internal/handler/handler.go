package handler

import (
	"gamelist/backend/pkg/jwt"

	"gorm.io/gorm"
)

// Handler bundles the dependencies shared by all request handlers.
type Handler struct {
	db     *gorm.DB
	tokens *jwt.Manager
}

func New(db *gorm.DB, tokens *jwt.Manager) *Handler {
	return &Handler{db: db, tokens: tokens}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}
