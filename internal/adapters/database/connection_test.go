package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/internal/config"
	"allweather.app/pkg/errors"
)

func TestOpen_SQLiteMigratesSnapshotTable(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "weather.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.NoError(t, sqlDB.Close())
	})

	assert.True(t, db.Migrator().HasTable(&WeatherDataModel{}))

	repo := NewSnapshotRepositoryAdapter(db)
	require.NoError(t, repo.Put(context.Background(), moscowSnapshot()))
	exists, err := repo.Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "mysql"})

	assert.Nil(t, db)
	assert.True(t, errors.IsConfigurationError(err))
}
