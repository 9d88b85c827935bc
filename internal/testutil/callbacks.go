package testutil

import (
	"errors"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"
)

var ErrInjectedQuery = errors.New("connection reset")

// FailQueriesOn makes every SELECT on table fail with ErrInjectedQuery while the
// returned flag is set.
func FailQueriesOn(t testing.TB, db *gorm.DB, table string) *atomic.Bool {
	t.Helper()

	var failing atomic.Bool
	err := db.Callback().Query().Before("gorm:query").Register("testutil:fail_"+table, func(tx *gorm.DB) {
		if failing.Load() && tx.Statement.Table == table {
			_ = tx.AddError(ErrInjectedQuery)
		}
	})
	if err != nil {
		t.Fatalf("register query callback: %v", err)
	}

	return &failing
}
