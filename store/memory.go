package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"blog-api/models"
)

// Memory is an in-memory PostStore used by tests.
type Memory struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]memoryEntry
	seq   int
	now   func() time.Time
}

// memoryEntry tracks insertion order so listing ties on created_at are
// broken the way they were inserted.
type memoryEntry struct {
	post models.Post
	seq  int
}

func NewMemory() *Memory {
	return &Memory{
		posts: make(map[uuid.UUID]memoryEntry),
		now:   time.Now,
	}
}

func (s *Memory) List(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]memoryEntry, 0, len(s.posts))
	for _, e := range s.posts {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].post.CreatedAt.Equal(entries[j].post.CreatedAt) {
			return entries[i].post.CreatedAt.After(entries[j].post.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	posts := make([]models.Post, len(entries))
	for i, e := range entries {
		posts[i] = e.post
	}
	return posts, nil
}

func (s *Memory) Get(ctx context.Context, id uuid.UUID) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.posts[id]
	if !ok {
		return models.Post{}, ErrNotFound
	}
	return entry.post, nil
}

func (s *Memory) Create(ctx context.Context, in models.CreatePostInput) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:        uuid.New(),
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: s.now(),
	}
	s.seq++
	s.posts[post.ID] = memoryEntry{post: post, seq: s.seq}
	return post, nil
}

func (s *Memory) Update(ctx context.Context, id uuid.UUID, in models.UpdatePostInput) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.posts[id]
	if !ok {
		return models.Post{}, ErrNotFound
	}
	if in.Title != nil {
		entry.post.Title = *in.Title
	}
	if in.Content != nil {
		entry.post.Content = *in.Content
	}
	s.posts[id] = entry
	return entry.post, nil
}

func (s *Memory) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.posts, id)
	return nil
}
