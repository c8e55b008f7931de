package repositories

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"myflix/internal/models"
)

func catalogFixture() []models.Movie {
	return []models.Movie{
		{ID: "m1", Title: "Frozen", Genre: models.Genre{Name: "Animation"}},
		{ID: "m2", Title: "Star Wars", Genre: models.Genre{Name: "Science Fiction"}},
	}
}

func TestCachingMovieRepository_Defaults(t *testing.T) {
	repo := NewCachingMovieRepository(nil, 0, NewMockMovieRepository(), "")
	assert.Equal(t, 5*time.Minute, repo.ttl)
	assert.Equal(t, "movies", repo.namespace)

	repo = NewCachingMovieRepository(nil, 10*time.Minute, NewMockMovieRepository(), "catalog")
	assert.Equal(t, 10*time.Minute, repo.ttl)
	assert.Equal(t, "catalog", repo.namespace)
}

func TestCachingMovieRepository_NilRedisBypassesCache(t *testing.T) {
	inner := NewMockMovieRepository()
	for _, m := range catalogFixture() {
		movie := m
		assert.NoError(t, inner.Create(&movie))
	}

	repo := NewCachingMovieRepository(nil, time.Minute, inner, "movies")

	movies, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestCachingMovieRepository_GetAll_CacheMissThenSet(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	inner := NewMockMovieRepository()
	for _, m := range catalogFixture() {
		movie := m
		assert.NoError(t, inner.Create(&movie))
	}
	expected, _ := inner.GetAll()
	b, _ := json.Marshal(expected)

	mock.ExpectGet("movies:all").RedisNil()
	mock.ExpectSet("movies:all", b, time.Minute).SetVal("OK")

	repo := NewCachingMovieRepository(rdb, time.Minute, inner, "movies")
	movies, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, movies, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingMovieRepository_GetAll_CacheHitSkipsInner(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	cached := catalogFixture()
	b, _ := json.Marshal(cached)
	mock.ExpectGet("movies:all").SetVal(string(b))

	// An empty inner repository proves the hit never reaches it.
	repo := NewCachingMovieRepository(rdb, time.Minute, NewMockMovieRepository(), "movies")
	movies, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, movies, 2)
	assert.Equal(t, "Frozen", movies[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingMovieRepository_GetByTitle_CorruptEntryIsDropped(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	inner := NewMockMovieRepository()
	movie := catalogFixture()[0]
	assert.NoError(t, inner.Create(&movie))
	b, _ := json.Marshal(&movie)

	mock.ExpectGet("movies:title:Frozen").SetVal("{not json")
	mock.ExpectDel("movies:title:Frozen").SetVal(1)
	mock.ExpectSet("movies:title:Frozen", b, time.Minute).SetVal("OK")

	repo := NewCachingMovieRepository(rdb, time.Minute, inner, "movies")
	got, err := repo.GetByTitle("Frozen")
	assert.NoError(t, err)
	assert.Equal(t, "m1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingMovieRepository_LookupMissesAreNotCached(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	mock.ExpectGet("movies:title:Unknown").RedisNil()

	repo := NewCachingMovieRepository(rdb, time.Minute, NewMockMovieRepository(), "movies")
	_, err := repo.GetByTitle("Unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingMovieRepository_KeyEscaping(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	inner := NewMockMovieRepository()
	movie := models.Movie{ID: "m3", Title: "Star Wars", Director: models.Director{Name: "George Lucas"}}
	assert.NoError(t, inner.Create(&movie))
	b, _ := json.Marshal(&movie)

	// Spaces in names must not produce malformed keys.
	mock.ExpectGet("movies:director:George_Lucas").RedisNil()
	mock.ExpectSet("movies:director:George_Lucas", b, time.Minute).SetVal("OK")

	repo := NewCachingMovieRepository(rdb, time.Minute, inner, "movies")
	got, err := repo.GetByDirectorName("George Lucas")
	assert.NoError(t, err)
	assert.Equal(t, "m3", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
