package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"blog-api/models"
)

// Postgres implements PostStore on top of a PostgreSQL connection pool.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) List(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, content, created_at FROM posts ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("error closing rows: %w", closeErr)
		}
	}()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return posts, nil
}

func (s *Postgres) Get(ctx context.Context, id uuid.UUID) (models.Post, error) {
	var post models.Post
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, content, created_at FROM posts WHERE id = $1", id).
		Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("error querying database: %w", err)
	}
	return post, nil
}

func (s *Postgres) Create(ctx context.Context, in models.CreatePostInput) (models.Post, error) {
	post := models.Post{
		ID:      uuid.New(),
		Title:   in.Title,
		Content: in.Content,
	}
	// created_at defaults to now() in the schema; read it back so the
	// caller sees the store-assigned timestamp.
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO posts (id, title, content) VALUES ($1, $2, $3) RETURNING created_at",
		post.ID, post.Title, post.Content).Scan(&post.CreatedAt)
	if err != nil {
		return models.Post{}, fmt.Errorf("error inserting post: %w", err)
	}
	return post, nil
}

func (s *Postgres) Update(ctx context.Context, id uuid.UUID, in models.UpdatePostInput) (models.Post, error) {
	var post models.Post
	err := s.db.QueryRowContext(ctx,
		`UPDATE posts
		 SET title = COALESCE($2, title), content = COALESCE($3, content)
		 WHERE id = $1
		 RETURNING id, title, content, created_at`,
		id, nullable(in.Title), nullable(in.Content)).
		Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("error updating post: %w", err)
	}
	return post, nil
}

func (s *Postgres) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
