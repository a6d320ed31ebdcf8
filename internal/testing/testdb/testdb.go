// Package testdb opens isolated in-memory SQLite databases carrying the
// application schema, for repository and service tests.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.New(t)
//	    store := repository.NewStore(db)
//	}
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"favorites-backend/internal/config"
	"favorites-backend/internal/database"

	"gorm.io/driver/sqlite"
)

var counter atomic.Int64

// New returns a migrated database that lives until the test ends.
func New(t *testing.T) *database.Database {
	t.Helper()

	name := fmt.Sprintf("testdb_%d_%d", time.Now().UnixNano(), counter.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=off", name)

	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{
		// one connection keeps every query on the same in-memory database
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		QueryTimeout:    10 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
