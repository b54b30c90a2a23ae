// Package store provides the post storage interface and its implementations.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"blog-api/models"
)

// ErrNotFound is returned when the referenced post does not exist.
var ErrNotFound = errors.New("post not found")

// PostStore defines the storage operations for posts.
type PostStore interface {
	// List returns all posts, newest first.
	List(ctx context.Context) ([]models.Post, error)

	// Get retrieves a post by its ID.
	Get(ctx context.Context, id uuid.UUID) (models.Post, error)

	// Create stores a new post, assigning its ID and creation timestamp,
	// and returns the stored post.
	Create(ctx context.Context, in models.CreatePostInput) (models.Post, error)

	// Update overwrites the supplied fields of an existing post and returns
	// the updated post. Absent fields keep their stored value.
	Update(ctx context.Context, id uuid.UUID, in models.UpdatePostInput) (models.Post, error)

	// Delete removes a post. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
