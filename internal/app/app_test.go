package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"events-console/internal/adapters/eventstore/rest"
	mem "events-console/internal/adapters/storage/memory"
	"events-console/internal/config"
	"events-console/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_SelectsDriver(t *testing.T) {
	cfg := config.Config{StoreDriver: config.StoreREST, StoreURL: "http://localhost:3000"}
	s, err := NewStore(cfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &rest.Client{}, s)

	seed := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(seed, []byte(`{"events":[{"id":1,"title":"Jazz Night","categoryIds":[]}],"users":[],"categories":[]}`), 0o600))

	cfg = config.Config{StoreDriver: config.StoreMemory, StoreSeed: seed}
	s, err = NewStore(cfg, logger.Nop())
	require.NoError(t, err)
	require.IsType(t, &mem.EventStore{}, s)

	all, err := s.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Jazz Night", all[0].Title)
}

func TestNewSessionStore_MemoryByDefault(t *testing.T) {
	s, closeFn, err := NewSessionStore(context.Background(), config.Config{SessionDriver: config.SessionsMemory}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.NoError(t, closeFn())
}
