package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextLifecycle(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.Established())
	assert.Empty(t, ctx.ID())

	ctx.Set("sess-1")
	assert.True(t, ctx.Established())
	assert.Equal(t, "sess-1", ctx.ID())

	ctx.Reset()
	assert.False(t, ctx.Established())
	assert.Empty(t, ctx.ID())
}

func TestContinuitySendsStoredID(t *testing.T) {
	ctx := NewContext()
	ctx.Set("sess-2")
	assert.Equal(t, "sess-2", Continuity{}.SessionID(ctx))
}

func TestContinuityBeforeSessionEstablished(t *testing.T) {
	// No id yet: continuity degrades to an anonymous call rather than
	// blocking the submission.
	assert.Empty(t, Continuity{}.SessionID(NewContext()))
}

func TestEphemeralAlwaysSendsNothing(t *testing.T) {
	ctx := NewContext()
	ctx.Set("sess-3")
	assert.Empty(t, Ephemeral{}.SessionID(ctx))
}
