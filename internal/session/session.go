package session

import "sync"

// Context holds the single opaque session id for this app load. It is created
// empty, filled once by the backend session call, and cleared only by an
// explicit reset. Nothing is persisted: a restart always starts blank.
type Context struct {
	mu sync.RWMutex
	id string
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

func (c *Context) Set(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
}

func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = ""
}

func (c *Context) Established() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id != ""
}

// Strategy decides which session id accompanies an outbound request. The
// choice is made by the caller per call site; there is no runtime
// negotiation.
type Strategy interface {
	SessionID(c *Context) string
}

// Continuity sends the stored id, asking the backend to keep the
// conversation's context.
type Continuity struct{}

func (Continuity) SessionID(c *Context) string { return c.ID() }

// Ephemeral sends no id, asking for a fresh disposable session.
type Ephemeral struct{}

func (Ephemeral) SessionID(*Context) string { return "" }
