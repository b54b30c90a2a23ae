package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"blog-api/models"
)

const (
	postsCacheKey    = "posts"
	postCacheKeyFmt  = "post:%s"
	DefaultCacheTime = 7 * 24 * time.Hour
)

// Cache is the subset of redis commands the cached store uses.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cached wraps a PostStore with a Redis read-through cache. Reads are served
// from the cache when present; every mutation invalidates the affected keys
// so the next read observes the write.
type Cached struct {
	next  PostStore
	cache Cache
	ttl   time.Duration
}

func NewCached(next PostStore, cache Cache, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTime
	}
	return &Cached{next: next, cache: cache, ttl: ttl}
}

func (s *Cached) List(ctx context.Context) ([]models.Post, error) {
	cachedData, err := s.cache.Get(ctx, postsCacheKey).Result()
	if err == nil {
		var posts []models.Post
		if err := json.Unmarshal([]byte(cachedData), &posts); err != nil {
			return nil, fmt.Errorf("error unmarshalling cached posts data: %w", err)
		}
		return posts, nil
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("error fetching posts from cache: %w", err)
	}

	posts, err := s.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(posts); err == nil {
		s.cache.Set(ctx, postsCacheKey, jsonData, s.ttl)
	}

	return posts, nil
}

func (s *Cached) Get(ctx context.Context, id uuid.UUID) (models.Post, error) {
	key := fmt.Sprintf(postCacheKeyFmt, id)
	cachedData, err := s.cache.Get(ctx, key).Result()
	if err == nil {
		var post models.Post
		if err := json.Unmarshal([]byte(cachedData), &post); err != nil {
			return models.Post{}, fmt.Errorf("error unmarshalling cached post data: %w", err)
		}
		return post, nil
	} else if !errors.Is(err, redis.Nil) {
		return models.Post{}, fmt.Errorf("error fetching post %s from cache: %w", id, err)
	}

	post, err := s.next.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if jsonData, err := json.Marshal(post); err == nil {
		s.cache.Set(ctx, key, jsonData, s.ttl)
	}

	return post, nil
}

func (s *Cached) Create(ctx context.Context, in models.CreatePostInput) (models.Post, error) {
	post, err := s.next.Create(ctx, in)
	if err != nil {
		return models.Post{}, err
	}
	s.cache.Del(ctx, postsCacheKey)
	return post, nil
}

func (s *Cached) Update(ctx context.Context, id uuid.UUID, in models.UpdatePostInput) (models.Post, error) {
	post, err := s.next.Update(ctx, id, in)
	if err != nil {
		return models.Post{}, err
	}
	s.cache.Del(ctx, postsCacheKey, fmt.Sprintf(postCacheKeyFmt, id))
	return post, nil
}

func (s *Cached) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.next.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Del(ctx, postsCacheKey, fmt.Sprintf(postCacheKeyFmt, id))
	return nil
}
