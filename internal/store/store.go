package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store Lapisan penyimpanan SQLite untuk snapshot dataset terakhir,
// supaya restart tidak perlu parse ulang sumber
type Store struct {
	db *sql.DB
}

// New Membuka (atau membuat) basis data pada jalur yang diberikan
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("gagal membuat direktori data: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka basis data: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("gagal ping basis data: %w", err)
	}

	// SQLite: satu koneksi saja
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("gagal inisialisasi skema: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("gagal membaca schema.sql: %w", err)
	}

	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("gagal mengeksekusi skema: %w", err)
	}

	return nil
}

// Close Menutup koneksi basis data
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB Koneksi mentah (untuk transaksi lanjutan)
func (s *Store) DB() *sql.DB {
	return s.db
}
