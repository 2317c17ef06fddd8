// Package integration contains tests that exercise the full stack, from
// the HTTP API down to a real (in-process) database.
package integration

import (
	"fmt"
	"strings"
	"testing"

	"github.com/advisory/backend/internal/infrastructure/logger"
	"github.com/advisory/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory SQLite database with the advisory
// schema migrated. Each call returns an isolated database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// a named in-memory database keeps all pooled connections on the
	// same data while staying isolated per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.NewGormLogger(zap.NewNop(), gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.AddressModel{},
		&models.ProductOwnerModel{},
		&models.ClientGroupModel{},
		&models.ClientGroupProductOwnerModel{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
