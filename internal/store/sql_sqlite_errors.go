package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// sqliteErrorCode extracts the extended SQLite result code from a driver
// error, or 0 when err does not originate from the sqlite3 driver. Callers
// switch on the result to map constraint violations to sentinel errors.
func sqliteErrorCode(err error) sqlite3.ErrNoExtended {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode
	}

	return 0
}
