// Package pgtest opens gorm over go-sqlmock for repository and query
// building tests.
package pgtest

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/models"
)

// MockDB returns a gorm handle whose connection is a sqlmock.
func MockDB(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

// StoreSQL renders the SELECT produced by build on the stores table, with
// arguments interpolated.
func StoreSQL(db *gorm.DB, build func(tx *gorm.DB) *gorm.DB) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var stores []models.StoreModel
		return build(tx.Model(&models.StoreModel{})).Find(&stores)
	})
}
