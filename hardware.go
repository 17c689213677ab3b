package rotary

import (
	"fmt"
)

// HardwareConfig wires an Encoder to already constructed pins and a clock.
type HardwareConfig struct {
	EncoderConfig
	// A and B are the two quadrature channels.
	A Pin
	B Pin
	// Now is the microsecond time source used to measure detent intervals.
	// Defaults to a monotonic clock started at program init.
	Now Clock
}

// NewWithHardware creates an Encoder on the provided pins. It configures
// both channels as inputs (with pull-ups unless disabled) and registers the
// edge handler on both edges of both channels.
func NewWithHardware(c HardwareConfig) (*Encoder, error) {
	if c.A == nil || c.B == nil {
		return nil, ErrPinNotConfigured
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Now == nil {
		c.Now = monotonicMicros
	}

	dec, err := NewDecoder(c.Mode)
	if err != nil {
		return nil, err
	}
	acc, err := NewAccumulator(c.EncoderConfig)
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		config:  c,
		decoder: dec,
		acc:     acc,
	}

	globalLogger.Info("Initializing rotary encoder...")

	pull := PullUp
	if c.DisablePullups {
		pull = PullFloat
	}
	if err := c.A.In(pull); err != nil {
		return nil, fmt.Errorf("failed to configure channel A: %w", err)
	}
	if err := c.B.In(pull); err != nil {
		return nil, fmt.Errorf("failed to configure channel B: %w", err)
	}

	if err := c.A.Watch(BothEdges, e.handleEdge); err != nil {
		return nil, fmt.Errorf("failed to watch channel A: %w", err)
	}
	if err := c.B.Watch(BothEdges, e.handleEdge); err != nil {
		c.A.Unwatch()
		return nil, fmt.Errorf("failed to watch channel B: %w", err)
	}

	globalLogger.Info("Rotary encoder ready (" + c.Mode.String() + ").")
	return e, nil
}
