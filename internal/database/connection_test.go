package database

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *ConnectionConfig {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	config := DefaultConnectionConfig()
	config.DatabasePath = filepath.Join(t.TempDir(), "nested", "items.db")
	config.Logger = logger
	return config
}

func TestConnectionManager_ConnectMigratesSchema(t *testing.T) {
	cm := NewConnectionManager(newTestConfig(t))

	require.NoError(t, cm.Connect())
	defer cm.Close()

	require.NotNil(t, cm.GetDB())
	assert.NoError(t, cm.HealthCheck())

	err := cm.Connect()
	assert.Error(t, err, "second Connect should fail")
}

func TestConnectionManager_CloseIsIdempotent(t *testing.T) {
	cm := NewConnectionManager(newTestConfig(t))
	require.NoError(t, cm.Connect())

	assert.NoError(t, cm.Close())
	assert.NoError(t, cm.Close())
	assert.Error(t, cm.Ping())
}

func TestMigrationManager_StatusAndRollback(t *testing.T) {
	config := newTestConfig(t)
	cm := NewConnectionManager(config)
	require.NoError(t, cm.Connect())
	require.NoError(t, cm.Close())

	mm := cm.MigrationManager()

	info, err := mm.GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(1), info.Version)
	assert.False(t, info.Dirty)
	assert.True(t, info.Applied)

	// Re-running is a no-op
	require.NoError(t, mm.RunMigrations())

	require.NoError(t, mm.RollbackMigration())
	assert.Error(t, mm.RollbackMigration(), "nothing left to roll back")
}
