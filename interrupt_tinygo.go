//go:build tinygo

package rotary

import "runtime/interrupt"

type irqState = interrupt.State

// criticalSection masks interrupts for the duration of the shared state
// access, so neither channel handler can preempt it.
type criticalSection struct{}

func (c *criticalSection) enter() irqState {
	return interrupt.Disable()
}

func (c *criticalSection) exit(s irqState) {
	interrupt.Restore(s)
}
