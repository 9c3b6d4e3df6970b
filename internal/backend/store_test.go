package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRecordsHistory(t *testing.T) {
	store := NewMemoryStore(3)

	assert.False(t, store.Exists("s1"))
	store.Create("s1")
	assert.True(t, store.Exists("s1"))

	store.Record("s1", "first")
	store.Record("s1", "second")
	assert.Equal(t, []string{"first", "second"}, store.History("s1"))

	// Unknown session ids are created on first record rather than rejected.
	store.Record("s2", "hello")
	assert.True(t, store.Exists("s2"))

	// History is capped at the configured depth.
	store.Record("s1", "third")
	store.Record("s1", "fourth")
	assert.Equal(t, []string{"second", "third", "fourth"}, store.History("s1"))

	assert.Nil(t, store.History("missing"))
}
