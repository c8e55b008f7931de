package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"myflix/internal/models"
)

// CachingMovieRepository decorates a MovieRepository with Redis caching.
// The catalog is read-heavy and changes only when re-seeded, so lookups are
// served from cache with a TTL and writes invalidate the namespace.
type CachingMovieRepository struct {
	inner     MovieRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMovieRepository decorates a MovieRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner MovieRepository, namespace string) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetAll retrieves the full catalog, checking cache first.
func (c *CachingMovieRepository) GetAll() ([]models.Movie, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetAll()
	}

	ctx := context.Background()
	key := fmt.Sprintf("%s:all", c.namespace)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []models.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetAll()
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// GetByTitle retrieves a movie by title, checking cache first.
func (c *CachingMovieRepository) GetByTitle(title string) (*models.Movie, error) {
	return c.getOne(fmt.Sprintf("%s:title:%s", c.namespace, safeKey(title)), func() (*models.Movie, error) {
		return c.inner.GetByTitle(title)
	})
}

// GetByGenreName retrieves the first movie matching a genre, checking cache first.
func (c *CachingMovieRepository) GetByGenreName(name string) (*models.Movie, error) {
	return c.getOne(fmt.Sprintf("%s:genre:%s", c.namespace, safeKey(name)), func() (*models.Movie, error) {
		return c.inner.GetByGenreName(name)
	})
}

// GetByDirectorName retrieves the first movie matching a director, checking cache first.
func (c *CachingMovieRepository) GetByDirectorName(name string) (*models.Movie, error) {
	return c.getOne(fmt.Sprintf("%s:director:%s", c.namespace, safeKey(name)), func() (*models.Movie, error) {
		return c.inner.GetByDirectorName(name)
	})
}

// Create adds a movie through the inner repository and invalidates the
// cached catalog entries.
func (c *CachingMovieRepository) Create(movie *models.Movie) error {
	if err := c.inner.Create(movie); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: don't fail the write if invalidation fails
	_ = c.deleteByPattern(context.Background(), c.namespace+":*")
	return nil
}

// getOne implements the shared cache-then-fallback path for single-movie lookups.
// Lookup misses in the inner repository are returned as errors and not cached.
func (c *CachingMovieRepository) getOne(key string, fetch func() (*models.Movie, error)) (*models.Movie, error) {
	if c.rdb == nil {
		return fetch()
	}

	ctx := context.Background()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out models.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := fetch()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMovieRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safeKey escapes characters that are problematic for Redis keys.
func safeKey(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
