// Package db manages the gallery's sqlite storage.
package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Pragmas applied through the DSN so every connection in the pool gets
// them. WAL with a busy timeout keeps catalog reads responsive while an
// admin write is in flight, and foreign keys are enforced so orders and
// favorites cannot reference removed rows.
var connPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(ON)",
	"synchronous(NORMAL)",
}

// Open opens the catalog database at path, creating it if needed.
func Open(path string) (*sql.DB, error) {
	params := make([]string, len(connPragmas))
	for i, pragma := range connPragmas {
		params[i] = "_pragma=" + pragma
	}

	db, err := sql.Open("sqlite", "file:"+path+"?"+strings.Join(params, "&"))
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database %s: %w", path, err)
	}

	return db, nil
}
