// Package diskcache is the CLI-only, on-disk supplement described by
// SPEC_FULL.md §4.H: a GORM/SQLite store of per-file extraction results,
// keyed by a sha256(filename:code) fingerprint. It is grounded on the
// teacher's internal/cache/ast_cache.go + gorm_db.go pattern (GORM over
// SQLite, WAL mode, a single migrated model) but trimmed to the one
// table this domain needs. The core convert.Facade never imports this
// package; only cmd/convert.go does.
package diskcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/umlforge/javauml/models"
)

// classInfoRow is the sole migrated table: one row per source file,
// storing its extracted classes as a JSON blob.
type classInfoRow struct {
	Fingerprint string `gorm:"primaryKey"`
	ClassesJSON string
}

func (classInfoRow) TableName() string { return "file_classes" }

// DB wraps the GORM handle opened against a single SQLite file under
// cacheDir/javauml.db.
type DB struct {
	gorm *gorm.DB
}

// Open creates cacheDir if needed and opens (migrating if new) the disk
// cache database inside it.
func Open(cacheDir string) (*DB, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("diskcache: create cache dir: %w", err)
	}

	dbPath := filepath.Join(cacheDir, "javauml.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("diskcache: open %s: %w", dbPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("diskcache: underlying sql.DB: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("diskcache: enable WAL: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("diskcache: set busy_timeout: %w", err)
	}

	if err := db.AutoMigrate(&classInfoRow{}); err != nil {
		return nil, fmt.Errorf("diskcache: migrate: %w", err)
	}

	return &DB{gorm: db}, nil
}

// Close releases the underlying SQLite connection.
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Fingerprint computes the per-file cache key for (filename, code).
func Fingerprint(filename, code string) string {
	sum := sha256.Sum256([]byte(filename + ":" + code))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached classes for fingerprint, if present.
func (d *DB) Lookup(fingerprint string) ([]models.ClassInfo, bool, error) {
	var row classInfoRow
	err := d.gorm.First(&row, "fingerprint = ?", fingerprint).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("diskcache: lookup: %w", err)
	}

	var classes []models.ClassInfo
	if err := json.Unmarshal([]byte(row.ClassesJSON), &classes); err != nil {
		return nil, false, fmt.Errorf("diskcache: decode cached classes: %w", err)
	}
	return classes, true, nil
}

// Store persists classes for fingerprint, overwriting any prior entry.
func (d *DB) Store(fingerprint string, classes []models.ClassInfo) error {
	payload, err := json.Marshal(classes)
	if err != nil {
		return fmt.Errorf("diskcache: encode classes: %w", err)
	}

	row := classInfoRow{Fingerprint: fingerprint, ClassesJSON: string(payload)}
	return d.gorm.Save(&row).Error
}
