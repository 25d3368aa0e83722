package database

import (
	"database/sql"
	"errors"
	"time"
)

// KV exposes the autosave table as the flat get/set store the draft
// package expects, mirroring the browser's localStorage surface.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db}
}

func (kv *KV) Get(key string) (string, bool, error) {
	var value string
	err := kv.db.
		QueryRow("SELECT value FROM autosave WHERE key = ?", key).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (kv *KV) Set(key, value string) error {
	_, err := kv.db.Exec(`
		INSERT INTO autosave (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		time.Now(),
	)
	return err
}

func (kv *KV) Delete(key string) error {
	_, err := kv.db.Exec("DELETE FROM autosave WHERE key = ?", key)
	return err
}
