package test

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"moviehub/pkg/config"
	"moviehub/pkg/database"
	"moviehub/pkg/model"
	"moviehub/pkg/reaction"
	movieurlRepo "moviehub/service-api/internal/repository/movieurl"
	reactionRepo "moviehub/service-api/internal/repository/reaction"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var db *sql.DB

// findAvailablePort finds an available port starting from the given port
func findAvailablePort(startPort uint32) uint32 {
	for port := startPort; port < startPort+100; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()
			return port
		}
	}
	log.Fatalf("Could not find an available port starting from %d", startPort)
	return 0
}

// TestMain boots an embedded PostgreSQL, applies the schema, and runs the
// suite against it. `go test -short` skips the whole package.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	dbPort := findAvailablePort(15432)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get user home directory: %v", err)
	}
	// binaries are cached across runs; data and runtime are throwaway
	binariesDir := filepath.Join(homeDir, ".moviehub", "binaries")
	if err := os.MkdirAll(binariesDir, 0755); err != nil {
		log.Fatalf("Failed to create binaries directory: %v", err)
	}
	workDir, err := os.MkdirTemp("", "moviehub-pg")
	if err != nil {
		log.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(workDir)

	embeddedDB := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Username("postgres").
		Password("postgres").
		Database("moviehub").
		Port(dbPort).
		RuntimePath(filepath.Join(workDir, "runtime")).
		DataPath(filepath.Join(workDir, "data")).
		BinariesPath(binariesDir))

	if err := embeddedDB.Start(); err != nil {
		log.Fatalf("Failed to start embedded PostgreSQL: %v", err)
	}
	defer embeddedDB.Stop()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            fmt.Sprintf("%d", dbPort),
			Username:        "postgres",
			Password:        "postgres",
			Name:            "moviehub",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
		},
	}

	for i := 0; ; i++ {
		db, err = database.NewPgDB(cfg)
		if err == nil {
			break
		}
		if i == 29 {
			log.Fatalf("Embedded PostgreSQL failed to accept connections: %v", err)
		}
		time.Sleep(1 * time.Second)
	}
	defer db.Close()

	schema, err := os.ReadFile("../../migrations/0001_init.sql")
	if err != nil {
		log.Fatalf("Failed to read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if db == nil {
		t.Skip("embedded PostgreSQL not started in -short mode")
	}
}

func insertUser(t *testing.T, username string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO users (id, username, email, password_hash, is_active) VALUES ($1, $2, $3, 'x', TRUE)`,
		id, username, username+"@example.com")
	require.NoError(t, err)
	return id
}

func insertMovie(t *testing.T, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO movies (id, title, slug) VALUES ($1, $2, $2)`,
		id, title)
	require.NoError(t, err)
	return id
}

func intPtr(v int) *int { return &v }

// Multiple partless links on one movie must coexist; the unique constraint
// on (movie_id, part) only bites when two links carry the same part number.
func TestMovieURLPartUniqueness(t *testing.T) {
	requireDB(t)
	movieID := insertMovie(t, "inception")
	repo := movieurlRepo.NewRepository(db)

	trailer := &model.MovieURL{
		ID: uuid.New(), MovieID: movieID, URLType: model.URLTypeTrailer,
		EmbedInput: "https://player.example.com/t1", EmbedURL: "https://player.example.com/t1",
		CreatedAt: time.Now(),
	}
	full := &model.MovieURL{
		ID: uuid.New(), MovieID: movieID, URLType: model.URLTypeMovie,
		EmbedInput: "https://player.example.com/m1", EmbedURL: "https://player.example.com/m1",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(trailer))
	require.NoError(t, repo.Create(full))

	part1 := &model.MovieURL{
		ID: uuid.New(), MovieID: movieID, URLType: model.URLTypeSeries, Part: intPtr(1),
		EmbedInput: "https://player.example.com/s1", EmbedURL: "https://player.example.com/s1",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(part1))

	duplicate := &model.MovieURL{
		ID: uuid.New(), MovieID: movieID, URLType: model.URLTypeSeries, Part: intPtr(1),
		EmbedInput: "https://player.example.com/s1b", EmbedURL: "https://player.example.com/s1b",
		CreatedAt: time.Now(),
	}
	assert.ErrorIs(t, repo.Create(duplicate), movieurlRepo.ErrPartTaken)

	urls, err := repo.ListByMovie(movieID)
	require.NoError(t, err)
	assert.Len(t, urls, 3)
}

// Likes from distinct users run concurrently and every one of them must
// land in the counter; the relative counter update may not lose writes.
func TestConcurrentDistinctUserLikes(t *testing.T) {
	requireDB(t)
	const userCount = 8

	movieID := insertMovie(t, "the-matrix")
	userIDs := make([]uuid.UUID, userCount)
	for i := range userIDs {
		userIDs[i] = insertUser(t, fmt.Sprintf("viewer%d", i))
	}

	repo := reactionRepo.NewRepository(db)

	var wg sync.WaitGroup
	errs := make(chan error, userCount)
	for _, userID := range userIDs {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			_, err := repo.Toggle(movieID, userID, reaction.Like)
			errs <- err
		}(userID)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var likeCount, dislikeCount int
	require.NoError(t, db.QueryRow(
		`SELECT like_count, dislike_count FROM movies WHERE id = $1`, movieID).
		Scan(&likeCount, &dislikeCount))
	assert.Equal(t, userCount, likeCount)
	assert.Equal(t, 0, dislikeCount)

	var rows int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM movie_reactions WHERE movie_id = $1`, movieID).
		Scan(&rows))
	assert.Equal(t, userCount, rows)
}
