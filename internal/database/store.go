// Package database provides the read index Trailhead browses.
//
// DBService loads the compiled-in trail catalog into an in-memory
// SQLite database once, at construction, and answers every query from
// it. Nothing is written after seeding and nothing outlives the
// process: the catalog stays compiled-in data, SQLite only indexes it.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrTrailNotFound is returned by GetTrail for an unknown id.
var ErrTrailNotFound = errors.New("trail not found")

// Store defines the read interface over the trail catalog.
// The TUI and the CLI depend on this, not on SQLite.
type Store interface {
	// ListTrails returns the whole catalog in display order.
	ListTrails() ([]trail.Trail, error)
	// QueryTrails returns trails matching filter, in display order.
	QueryTrails(filter TrailFilter) ([]trail.Trail, error)
	// GetTrail returns one trail by id.
	GetTrail(id string) (*trail.Trail, error)
	// CategoryCounts returns how many trails each category pill shows.
	CategoryCounts() ([]CategoryCount, error)
	// GetCatalogStats returns aggregate figures over the catalog.
	GetCatalogStats() (*CatalogStats, error)

	// Close releases the database.
	Close() error
}

// ============================================================
// Query Models
// ============================================================

// TrailFilter defines query parameters for trail listing. A zero
// value, or a Category of All, matches the whole catalog.
type TrailFilter struct {
	Category   trail.Category    `json:"category,omitempty"`
	Difficulty *trail.Difficulty `json:"difficulty,omitempty"`
	MinRating  float64           `json:"min_rating,omitempty"`
	Limit      int               `json:"limit,omitempty"`
}

// CategoryCount pairs a category with the number of trails it shows.
type CategoryCount struct {
	Category trail.Category `json:"category"`
	Count    int            `json:"count"`
}

// CatalogStats holds aggregate figures over the catalog.
type CatalogStats struct {
	TotalTrails   int                      `json:"total_trails"`
	AverageRating float64                  `json:"average_rating"`
	MaxRating     float64                  `json:"max_rating"`
	TopRated      []string                 `json:"top_rated"`
	ByDifficulty  map[trail.Difficulty]int `json:"by_difficulty"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements Store over an in-memory SQLite database.
type DBService struct {
	db *sql.DB
	mu sync.RWMutex

	stmtGetTrail *sql.Stmt
}

// NewDBService creates the in-memory database, applies the schema and
// seeds it with catalog, preserving catalog order.
func NewDBService(catalog []trail.Trail) (*DBService, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	// Each connection to :memory: is a separate database, so the pool
	// must never grow past, or drop, the one seeded connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{db: db}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.seed(catalog); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	svc.stmtGetTrail, err = db.Prepare(`
		SELECT trail_id, title, location, image, rating, difficulty, category
		FROM trails WHERE trail_id = ?
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing GetTrail: %w", err)
	}

	return svc, nil
}

// initSchema executes the embedded schema.sql.
func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

// seed inserts the catalog in a single transaction. Position records
// catalog order so every query can return display order.
func (s *DBService) seed(catalog []trail.Trail) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.Prepare(`
		INSERT INTO trails (trail_id, position, title, location, image, rating, difficulty, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range catalog {
		_, err := stmt.Exec(
			t.ID, i, t.Title, t.Location, t.Image,
			t.Rating, string(t.Difficulty), string(t.Category),
		)
		if err != nil {
			return fmt.Errorf("inserting trail %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

// ListTrails returns the whole catalog in display order.
func (s *DBService) ListTrails() ([]trail.Trail, error) {
	return s.QueryTrails(TrailFilter{})
}

// QueryTrails returns trails matching filter, ordered by catalog
// position. A category-only filter agrees with trail.Filter.
func (s *DBService) QueryTrails(filter TrailFilter) ([]trail.Trail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT trail_id, title, location, image, rating, difficulty, category FROM trails WHERE 1=1`
	args := make([]interface{}, 0)

	if filter.Category != "" && filter.Category != trail.All {
		query += ` AND category = ?`
		args = append(args, string(filter.Category))
	}
	if filter.Difficulty != nil {
		query += ` AND difficulty = ?`
		args = append(args, string(*filter.Difficulty))
	}
	if filter.MinRating > 0 {
		query += ` AND rating >= ?`
		args = append(args, filter.MinRating)
	}

	query += ` ORDER BY position ASC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trails: %w", err)
	}
	defer rows.Close()

	return scanTrails(rows)
}

// GetTrail returns one trail by id, or ErrTrailNotFound.
func (s *DBService) GetTrail(id string) (*trail.Trail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := &trail.Trail{}
	var difficulty, category string
	err := s.stmtGetTrail.QueryRow(id).Scan(
		&t.ID, &t.Title, &t.Location, &t.Image, &t.Rating, &difficulty, &category,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("getting trail %s: %w", id, ErrTrailNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting trail %s: %w", id, err)
	}
	t.Difficulty = trail.Difficulty(difficulty)
	t.Category = trail.Category(category)
	return t, nil
}

// CategoryCounts returns one entry per category in pill order. All
// counts the whole catalog; empty categories report zero.
func (s *DBService) CategoryCounts() ([]CategoryCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT category, COUNT(*) FROM trails GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("counting categories: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[trail.Category]int)
	total := 0
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		byCategory[trail.Category(category)] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category counts: %w", err)
	}

	var counts []CategoryCount
	for _, c := range trail.Categories() {
		n := byCategory[c]
		if c == trail.All {
			n = total
		}
		counts = append(counts, CategoryCount{Category: c, Count: n})
	}
	return counts, nil
}

// GetCatalogStats returns aggregate figures over the catalog.
func (s *DBService) GetCatalogStats() (*CatalogStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &CatalogStats{ByDifficulty: make(map[trail.Difficulty]int)}

	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(AVG(rating), 0),
			COALESCE(MAX(rating), 0)
		FROM trails
	`).Scan(&stats.TotalTrails, &stats.AverageRating, &stats.MaxRating)
	if err != nil {
		return nil, fmt.Errorf("querying catalog stats: %w", err)
	}

	rows, err := s.db.Query(`SELECT difficulty, COUNT(*) FROM trails GROUP BY difficulty`)
	if err != nil {
		return nil, fmt.Errorf("counting difficulties: %w", err)
	}
	for rows.Next() {
		var difficulty string
		var n int
		if err := rows.Scan(&difficulty, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning difficulty count: %w", err)
		}
		stats.ByDifficulty[trail.Difficulty(difficulty)] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating difficulty counts: %w", err)
	}

	top, err := s.db.Query(`
		SELECT title FROM trails WHERE rating = ? ORDER BY position ASC
	`, stats.MaxRating)
	if err != nil {
		return nil, fmt.Errorf("querying top rated trails: %w", err)
	}
	defer top.Close()
	for top.Next() {
		var title string
		if err := top.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning top rated trail: %w", err)
		}
		stats.TopRated = append(stats.TopRated, title)
	}

	return stats, top.Err()
}

// Close closes the prepared statement and the database.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stmtGetTrail != nil {
		s.stmtGetTrail.Close()
	}
	return s.db.Close()
}

// ============================================================
// Scan Helpers
// ============================================================

func scanTrails(rows *sql.Rows) ([]trail.Trail, error) {
	var trails []trail.Trail
	for rows.Next() {
		var t trail.Trail
		var difficulty, category string
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Location, &t.Image, &t.Rating, &difficulty, &category,
		); err != nil {
			return nil, fmt.Errorf("scanning trail row: %w", err)
		}
		t.Difficulty = trail.Difficulty(difficulty)
		t.Category = trail.Category(category)
		trails = append(trails, t)
	}
	return trails, rows.Err()
}
