package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps slots in a map_slots table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS map_slots (
		key TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

func (ps *PostgresStore) Save(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	query := `
	INSERT INTO map_slots (key, data)
	VALUES ($1, $2)
	ON CONFLICT (key)
	DO UPDATE SET data = $2, updated_at = NOW()
	`
	if _, err := ps.db.Exec(query, key, string(data)); err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}

func (ps *PostgresStore) Load(key string) ([]byte, error) {
	var data string
	err := ps.db.QueryRow(`SELECT data FROM map_slots WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", key, err)
	}
	return []byte(data), nil
}

func (ps *PostgresStore) List() ([]string, error) {
	rows, err := ps.db.Query(`SELECT key FROM map_slots ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("list slots: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (ps *PostgresStore) Delete(key string) error {
	res, err := ps.db.Exec(`DELETE FROM map_slots WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
