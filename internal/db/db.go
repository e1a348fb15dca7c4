// Package db opens the workspace-local SQLite store. Each workspace owns a
// single database file under its .gridworks directory; the CLI and a running
// server may both have it open.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	workspaceDir = ".gridworks"
	dbName       = "gridworks.db"
)

type Config struct {
	Workspace string
}

// EnsureWorkspace creates the workspace data directory if missing and
// returns its path.
func EnsureWorkspace(workspace string) (string, error) {
	dir := filepath.Join(rootOf(workspace), workspaceDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Open opens the workspace database. Foreign keys are enforced, the journal
// runs in WAL mode and a writer waits up to five seconds on a locked file
// rather than failing, so concurrent CLI and server access does not surface
// SQLITE_BUSY to callers.
func Open(cfg Config) (*sql.DB, error) {
	if _, err := EnsureWorkspace(cfg.Workspace); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", Path(cfg.Workspace))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	return conn, nil
}

// Path returns the database file path for the workspace.
func Path(workspace string) string {
	return filepath.Join(rootOf(workspace), workspaceDir, dbName)
}

func rootOf(workspace string) string {
	if workspace == "" {
		return "."
	}
	return workspace
}
