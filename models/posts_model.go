package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePostInput is the request body for creating a post. Both fields are
// required and must be non-empty after trimming.
type CreatePostInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostInput is the request body for updating a post. Nil fields keep
// their stored value; at least one field must be present.
type UpdatePostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
