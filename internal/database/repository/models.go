package repository

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Category represents a category row.
type Category struct {
	Name      string
	SortOrder int
}

// MenuItem represents a menu_items row.
type MenuItem struct {
	ID          string
	Category    string
	Name        string
	Price       int
	Description string
	Image       string
	SortOrder   int
}
