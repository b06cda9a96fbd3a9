// Package journal keeps a local history of finished game sessions in SQLite.
package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/constellation"

	_ "modernc.org/sqlite"
)

//go:embed schema/0001_init.sql
var schema string

var ErrNotFound = errors.New("session not found")

// Game names stored in the journal
const (
	GameConstellation = "constellation"
	GameSorting       = "sorting"
)

// Session is one finished (or abandoned) play session
type Session struct {
	ID         string
	Game       string
	Variant    string
	Progress   int // Connections made or items sorted
	Goal       int
	Score      int
	ImpactKg   float64
	Completed  bool
	StartedAt  time.Time
	FinishedAt time.Time

	Connections []constellation.Connection
}

// NewSession starts a session record with a fresh id
func NewSession(game, variant string, goal int, started time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Game:      game,
		Variant:   variant,
		Goal:      goal,
		StartedAt: started,
	}
}

// Journal wraps the history database
type Journal struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens or creates the journal at path. Use ":memory:" for a private
// in-memory database.
func Open(path string, logger *zap.Logger) (*Journal, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent
	db.SetMaxOpenConns(1)

	j := &Journal{db: db, logger: logger}
	if err := j.init(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("journal opened", zap.String("path", path))
	return j, nil
}

func (j *Journal) init() error {
	if _, err := j.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("enabling WAL: %w", err)
	}
	if _, err := j.db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("running journal migrations: %w", err)
	}
	return nil
}

// Close releases the database
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores s and its connections atomically
func (j *Journal) Record(ctx context.Context, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning record: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, game, variant, progress, goal, score, impact_kg, completed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Game, s.Variant, s.Progress, s.Goal, s.Score, s.ImpactKg,
		boolToInt(s.Completed), s.StartedAt.UnixMilli(), s.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for i, c := range s.Connections {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO connections (session_id, seq, node_a, node_b, category)
			VALUES (?, ?, ?, ?, ?)`,
			s.ID, i+1, int(c.Pair.Lo), int(c.Pair.Hi), c.Category.String(),
		)
		if err != nil {
			return fmt.Errorf("inserting connection %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}

	j.logger.Info("session recorded",
		zap.String("id", s.ID),
		zap.String("game", s.Game),
		zap.Int("progress", s.Progress),
		zap.Bool("completed", s.Completed),
	)
	return nil
}

// List returns the most recent sessions first, without connections
func (j *Journal) List(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, game, variant, progress, goal, score, impact_kg, completed, started_at, finished_at
		FROM sessions ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Get returns one session with its connections
func (j *Journal) Get(ctx context.Context, id string) (*Session, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT id, game, variant, progress, goal, score, impact_kg, completed, started_at, finished_at
		FROM sessions WHERE id = ?`, id)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	conns, err := j.connections(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Connections = conns
	return &s, nil
}

func (j *Journal) connections(ctx context.Context, id string) ([]constellation.Connection, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT node_a, node_b, category FROM connections
		WHERE session_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	defer rows.Close()

	var out []constellation.Connection
	for rows.Next() {
		var a, b int
		var name string
		if err := rows.Scan(&a, &b, &name); err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}
		cat, err := constellation.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		out = append(out, constellation.Connection{
			Pair:     constellation.NewPair(constellation.Node(a), constellation.Node(b)),
			Category: cat,
		})
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (Session, error) {
	var s Session
	var completed int
	var started, finished int64
	err := sc.Scan(&s.ID, &s.Game, &s.Variant, &s.Progress, &s.Goal, &s.Score,
		&s.ImpactKg, &completed, &started, &finished)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, err
		}
		return s, fmt.Errorf("scanning session: %w", err)
	}
	s.Completed = completed != 0
	s.StartedAt = time.UnixMilli(started)
	s.FinishedAt = time.UnixMilli(finished)
	return s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
