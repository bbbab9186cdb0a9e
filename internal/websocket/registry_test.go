package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BindLastWins(t *testing.T) {
	registry := NewConnectionRegistry()
	c1 := &Client{ID: "c1"}
	c2 := &Client{ID: "c2"}

	evicted := registry.Bind(42, c1)
	assert.Nil(t, evicted, "first bind should not evict anything")

	evicted = registry.Bind(42, c2)
	require.NotNil(t, evicted, "second bind should report the replaced connection")
	assert.Same(t, c1, evicted)

	got, ok := registry.Lookup(42)
	require.True(t, ok)
	assert.Same(t, c2, got, "lookup must return only the latest binding")
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_BindSameClientTwice(t *testing.T) {
	registry := NewConnectionRegistry()
	c1 := &Client{ID: "c1"}

	registry.Bind(42, c1)
	evicted := registry.Bind(42, c1)

	assert.Nil(t, evicted, "rebinding the same connection is a no-op")
	got, ok := registry.Lookup(42)
	require.True(t, ok)
	assert.Same(t, c1, got)
}

func TestRegistry_LookupAbsent(t *testing.T) {
	registry := NewConnectionRegistry()

	got, ok := registry.Lookup(7)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRegistry_UnbindOnlyByOwner(t *testing.T) {
	registry := NewConnectionRegistry()
	c1 := &Client{ID: "c1"}
	c2 := &Client{ID: "c2"}

	// Reconnect race: the member re-authenticates on c2 before c1's
	// disconnect handler runs.
	registry.Bind(42, c1)
	registry.Bind(42, c2)

	registry.Unbind(42, c1)

	got, ok := registry.Lookup(42)
	require.True(t, ok, "stale unbind must not evict the newer binding")
	assert.Same(t, c2, got)

	registry.Unbind(42, c2)
	_, ok = registry.Lookup(42)
	assert.False(t, ok)
}

func TestRegistry_UnbindUnknownMember(t *testing.T) {
	registry := NewConnectionRegistry()

	// Must not panic or corrupt the map.
	registry.Unbind(99, &Client{ID: "c1"})
	assert.Equal(t, 0, registry.Len())
}
