package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

const (
	pingAttempts = 3
	pingDelay    = 300 * time.Millisecond
)

// SQLiteStore хранит сессионные пары в локальном файле SQLite
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(ctx context.Context, path string, log *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	if err := retry.Do(
		func() error { return db.PingContext(ctx) },
		retry.Context(ctx),
		retry.Delay(pingDelay),
		retry.Attempts(pingAttempts),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warn("Хранилище сессии недоступно",
				"error", err,
				"attempt", attempt,
			)
		}),
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к хранилищу сессии: %w", err)
	}

	store := &SQLiteStore{db: db, now: time.Now}

	if err := store.initTables(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cookies (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			expires_at INTEGER NOT NULL
		);
	`)

	return err
}

func (s *SQLiteStore) Get(name string) (Entry, error) {
	var entry Entry
	var expiresAt int64

	err := s.db.QueryRow(`
		SELECT name, value, expires_at
		FROM cookies
		WHERE name = ?
	`, name).Scan(&entry.Name, &entry.Value, &expiresAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("ошибка чтения записи %s: %w", name, err)
	}

	entry.ExpiresAt = time.Unix(expiresAt, 0)
	if entry.Expired(s.now()) {
		return Entry{}, ErrEntryNotFound
	}

	return entry, nil
}

func (s *SQLiteStore) Set(entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO cookies (name, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, entry.Name, entry.Value, entry.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("ошибка сохранения записи %s: %w", entry.Name, err)
	}

	return nil
}

func (s *SQLiteStore) Names() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM cookies ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
