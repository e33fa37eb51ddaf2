package event

import (
	"maps"
	"sync"
)

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(evt DomainEvent)
}

// Counter is a concurrent tally keyed by name.
type Counter struct {
	mu     sync.RWMutex
	values map[string]uint64
}

func NewCounter() *Counter {
	return &Counter{values: make(map[string]uint64)}
}

func (c *Counter) Increment(key string) {
	c.Add(key, 1)
}

func (c *Counter) Add(key string, n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] += n
}

func (c *Counter) Get(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

func (c *Counter) All() map[string]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.values)
}
