// Package pgxutil bridges database/sql pools opened with the pgx stdlib driver to native pgx
// connections, so repositories keep one *sql.DB but scan rows with pgx's struct mapping.
package pgxutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// ErrNotPgxDriver is returned when the pool was not opened with the pgx stdlib driver.
var ErrNotPgxDriver = errors.New("unexpected driver connection type; expected *stdlib.Conn")

// WithPgxConn acquires a *pgx.Conn via the stdlib bridge and executes fn with it.
// The connection goes back to the pool when fn returns.
func WithPgxConn(ctx context.Context, db *sql.DB, fn func(*pgx.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get conn from pool: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	return conn.Raw(func(dc any) error {
		std, ok := dc.(*stdlib.Conn)
		if !ok {
			return ErrNotPgxDriver
		}
		return fn(std.Conn())
	})
}

// Query describes a statement whose rows map onto a struct by `db` column tags.
type Query struct {
	SQL  string
	Args []any
}

// CollectStructs runs q and scans every row into T by column name.
func CollectStructs[T any](ctx context.Context, db *sql.DB, q Query) ([]T, error) {
	var out []T
	err := WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q.SQL, q.Args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[T])
		return err
	})
	return out, err
}

// CollectOneStruct runs q and scans exactly one row into T. It returns pgx.ErrNoRows
// when the statement produced nothing.
func CollectOneStruct[T any](ctx context.Context, db *sql.DB, q Query) (T, error) {
	var out T
	err := WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q.SQL, q.Args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
		return err
	})
	return out, err
}
