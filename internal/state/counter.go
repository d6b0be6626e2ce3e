package state

import "sync"

// Counter is a request counter shared by all handler goroutines.
// The value starts at zero and only ever grows.
type Counter struct {
	mu    sync.Mutex
	value int64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Increment adds one and returns the new value. The lock covers only the
// increment and the read.
func (c *Counter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
