// Package chronicle archives completed playthroughs in a local SQLite
// database so past timelines can be reviewed later.
package chronicle

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"althistory/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS chronicles (
	id TEXT PRIMARY KEY,
	scenario_id TEXT NOT NULL,
	scenario_name TEXT NOT NULL,
	completed_at INTEGER NOT NULL,
	decisions INTEGER NOT NULL,
	final_situation TEXT NOT NULL,
	alterations TEXT NOT NULL,
	choices TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chronicles_completed_at ON chronicles (completed_at DESC);
`

// Store provides SQLite-backed persistence for chronicle entries.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a chronicle store at the provided path, creating the database
// and its schema on first use.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("chronicle path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Append archives one completed playthrough. A missing identifier or
// completion time is filled in.
func (s *Store) Append(ctx context.Context, entry model.ChronicleEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CompletedAt.IsZero() {
		entry.CompletedAt = time.Now().UTC()
	}

	alterations, err := encodeStrings(entry.Alterations)
	if err != nil {
		return fmt.Errorf("encode alterations: %w", err)
	}
	choices, err := encodeStrings(entry.Choices)
	if err != nil {
		return fmt.Errorf("encode choices: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT INTO chronicles (id, scenario_id, scenario_name, completed_at, decisions, final_situation, alterations, choices)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.ScenarioID,
		entry.ScenarioName,
		toMillis(entry.CompletedAt),
		entry.Decisions,
		entry.FinalSituation,
		alterations,
		choices,
	)
	if err != nil {
		return fmt.Errorf("insert chronicle: %w", err)
	}
	return nil
}

// List returns archived playthroughs, most recently completed first. A
// limit of zero or less returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]model.ChronicleEntry, error) {
	query := `
		SELECT id, scenario_id, scenario_name, completed_at, decisions, final_situation, alterations, choices
		FROM chronicles
		ORDER BY completed_at DESC, id`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query chronicles: %w", err)
	}
	defer rows.Close()

	var entries []model.ChronicleEntry
	for rows.Next() {
		entry, err := scanChronicleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chronicle: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chronicles: %w", err)
	}
	return entries, nil
}

func scanChronicleRow(rows *sql.Rows) (model.ChronicleEntry, error) {
	var (
		entry          model.ChronicleEntry
		completedAt    int64
		alterationsRaw string
		choicesRaw     string
	)
	if err := rows.Scan(
		&entry.ID,
		&entry.ScenarioID,
		&entry.ScenarioName,
		&completedAt,
		&entry.Decisions,
		&entry.FinalSituation,
		&alterationsRaw,
		&choicesRaw,
	); err != nil {
		return model.ChronicleEntry{}, err
	}

	alterations, err := decodeStrings(alterationsRaw)
	if err != nil {
		return model.ChronicleEntry{}, err
	}
	choices, err := decodeStrings(choicesRaw)
	if err != nil {
		return model.ChronicleEntry{}, err
	}
	entry.Alterations = alterations
	entry.Choices = choices
	entry.CompletedAt = fromMillis(completedAt)
	return entry, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func encodeStrings(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal strings: %w", err)
	}
	return string(encoded), nil
}

func decodeStrings(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(value), &values); err != nil {
		return nil, fmt.Errorf("unmarshal strings: %w", err)
	}
	return values, nil
}
