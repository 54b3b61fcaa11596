package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestClearDeletesOnlyManagedNamespaces(t *testing.T) {
	mr, client := newTestClient(t)
	require.NoError(t, mr.Set("graph:root:all", "1"))
	require.NoError(t, mr.Set("graph:children:org_001", "1"))
	require.NoError(t, mr.Set("graph:node:author_0001", "1"))
	require.NoError(t, mr.Set("stat:summary", "1"))
	require.NoError(t, mr.Set("session:user42", "1"))

	stats := NewInvalidator(client, zap.NewNop()).Clear(context.Background())

	assert.Equal(t, 3, stats.GraphKeys)
	assert.Equal(t, 1, stats.StatKeys)
	assert.Equal(t, 4, stats.Total())

	assert.False(t, mr.Exists("graph:root:all"))
	assert.False(t, mr.Exists("graph:children:org_001"))
	assert.False(t, mr.Exists("graph:node:author_0001"))
	assert.False(t, mr.Exists("stat:summary"))
	assert.True(t, mr.Exists("session:user42"), "keys outside the managed namespaces must survive")
}

func TestClearOnEmptyCache(t *testing.T) {
	_, client := newTestClient(t)
	stats := NewInvalidator(client, zap.NewNop()).Clear(context.Background())
	assert.Zero(t, stats.Total())
}

func TestClearWithNilClientIsANoOp(t *testing.T) {
	stats := NewInvalidator(nil, zap.NewNop()).Clear(context.Background())
	assert.Zero(t, stats.GraphKeys)
	assert.Zero(t, stats.StatKeys)
}

func TestClearToleratesClosedConnection(t *testing.T) {
	mr, client := newTestClient(t)
	require.NoError(t, mr.Set("graph:node:paper_00001", "1"))
	mr.Close()

	stats := NewInvalidator(client, zap.NewNop()).Clear(context.Background())
	assert.Zero(t, stats.Total())
}
