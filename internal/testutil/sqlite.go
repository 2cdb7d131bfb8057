// Package testutil wires an in-memory sqlite database behind the Ent
// client so repository and ledger tests run without Postgres.
package testutil

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync/atomic"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"

	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/enttest"
)

// Ent's sqlite dialect expects a driver registered as "sqlite3".
// modernc registers itself as "sqlite", so re-register it under the
// expected name with foreign keys enabled per connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

var dbSeq int64

// NewEntClient opens a fresh in-memory database with the schema
// migrated, closed automatically when the test finishes. The pool is
// capped at one connection so concurrent transactions queue instead of
// hitting SQLITE_BUSY.
func NewEntClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:test_%d?mode=memory&cache=shared&_fk=1", atomic.AddInt64(&dbSeq, 1))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(drv)))
	t.Cleanup(func() { _ = client.Close() })
	return client
}
