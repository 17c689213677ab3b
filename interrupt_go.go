//go:build !tinygo

package rotary

import "sync"

// irqState is a placeholder for the saved interrupt state on regular Go.
type irqState struct{}

// criticalSection serializes the edge handlers against each other and
// against the consumer. On regular Go the handlers run on pin watcher
// goroutines, so a mutex stands in for masking interrupts.
type criticalSection struct {
	mu sync.Mutex
}

func (c *criticalSection) enter() irqState {
	c.mu.Lock()
	return irqState{}
}

func (c *criticalSection) exit(irqState) {
	c.mu.Unlock()
}
