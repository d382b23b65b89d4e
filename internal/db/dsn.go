package db

import (
	"database/sql"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqliteDriverName is a sqlite3 driver with lower() overridden by the
// Unicode-aware Go implementation. The built-in only case-folds ASCII,
// which breaks case-insensitive search over Cyrillic names; with the
// override LOWER(col) LIKE LOWER(?) behaves the same as on postgres.
const sqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

// IsPostgres reports whether the DSN addresses a postgres server rather
// than a local sqlite file. The desktop deployment passes a bare file
// path; the shop-server deployment passes a postgres:// URL.
func IsPostgres(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// Dialector picks the gorm driver matching the DSN form.
func Dialector(dsn string) gorm.Dialector {
	if IsPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return sqlite.Dialector{DriverName: sqliteDriverName, DSN: dsn}
}

// MigrateURL converts the DSN into the URL form golang-migrate expects.
func MigrateURL(dsn string) string {
	if IsPostgres(dsn) {
		return dsn
	}
	return "sqlite3://" + dsn
}
