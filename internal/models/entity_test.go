package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntitiesNormalizesWireShapes(t *testing.T) {
	decoded := DecodeEntities(map[string]any{
		"account_id":   "123",
		"amount":       float64(250.5),
		"confirmed":    true,
		"account_type": map[string]any{"value": "savings"},
		"query_blob":   map[string]any{"raw": "show me everything"},
		"mystery":      []any{"unsupported"},
	})

	assert.Equal(t, Entity{Kind: EntityScalar, Value: "123"}, decoded["account_id"])
	assert.Equal(t, Entity{Kind: EntityScalar, Value: "250.5"}, decoded["amount"])
	assert.Equal(t, Entity{Kind: EntityScalar, Value: "true"}, decoded["confirmed"])
	assert.Equal(t, Entity{Kind: EntityScalar, Value: "savings"}, decoded["account_type"])
	assert.Equal(t, Entity{Kind: EntityRaw, Value: "show me everything"}, decoded["query_blob"])

	// Unsupported shapes are dropped, not guessed at.
	_, ok := decoded["mystery"]
	assert.False(t, ok)
}

func TestDecodeEntitiesEmpty(t *testing.T) {
	assert.Nil(t, DecodeEntities(nil))
	assert.Nil(t, DecodeEntities(map[string]any{}))
}
