package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vytor/lingoflash/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// SQLite implements Store over a single keyed-records table.
type SQLite struct {
	db  *sql.DB
	log *logger.Logger
}

// Open opens (or creates) the database at path and applies migrations.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*SQLite, error) {
	log := logger.Default().WithPrefix("storage")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Info("opening database: %s", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // SQLite best practice for single writer

	s := &SQLite{db: sqlDB, log: log}
	if err := s.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		return nil, err
	}

	log.Info("database ready")
	return s, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) applyMigrations(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		version := entry.Name()
		applied, err := s.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			s.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		s.log.Info("applying migration: %s", version)
		if _, err := s.db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_migrations WHERE version = ?`, version).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *SQLite) GetAll(ctx context.Context, collection string) ([][]byte, error) {
	query, args, err := sqlBuilder.
		Select("data").
		From("records").
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Error("failed to query collection %s: %v", collection, err)
		return nil, err
	}
	defer rows.Close()

	var records [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		records = append(records, data)
	}
	return records, rows.Err()
}

func (s *SQLite) Get(ctx context.Context, collection, key string) ([]byte, error) {
	query, args, err := sqlBuilder.
		Select("data").
		From("records").
		Where(squirrel.Eq{"collection": collection, "key": key}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to get %s/%s: %v", collection, key, err)
		return nil, err
	}
	return data, nil
}

func (s *SQLite) Put(ctx context.Context, collection, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO records (collection, key, data)
VALUES (?, ?, ?)
ON CONFLICT (collection, key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
`, collection, key, data)
	if err != nil {
		s.log.Error("failed to put %s/%s: %v", collection, key, err)
	}
	return err
}

// Reset removes every record in every collection.
func (s *SQLite) Reset(ctx context.Context) error {
	s.log.Warn("resetting all application data")
	_, err := s.db.ExecContext(ctx, `DELETE FROM records`)
	return err
}

func (s *SQLite) Delete(ctx context.Context, collection, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE collection = ? AND key = ?`, collection, key)
	if err != nil {
		s.log.Error("failed to delete %s/%s: %v", collection, key, err)
	}
	return err
}
