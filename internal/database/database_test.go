package database

import (
	"io/fs"
	"testing"

	"github.com/harvest-export/website/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"}

	db, err := NewDatabase(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, model := range Models() {
		assert.True(t, db.Migrator().HasTable(model))
	}

	require.NoError(t, HealthCheck(db))
	stats, err := HealthCheckWithStats(db)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
}

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(Migrations, MigrationsDir+"/*.sql")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(files), 2)
	assert.Equal(t, "migrations/00001_initial_schema.sql", files[0])
}
