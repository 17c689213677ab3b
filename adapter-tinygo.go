//go:build tinygo

package rotary

import (
	"machine"
)

// tinygoPin wraps a machine.Pin to satisfy the Pin interface.
type tinygoPin struct {
	pin  machine.Pin
	mode machine.PinMode
}

func (p *tinygoPin) In(pull Pull) error {
	switch pull {
	case PullUp:
		p.mode = machine.PinInputPullup
	case PullDown:
		p.mode = machine.PinInputPulldown
	default:
		p.mode = machine.PinInput
	}
	p.pin.Configure(machine.PinConfig{Mode: p.mode})
	return nil
}

func (p *tinygoPin) Read() Level {
	return Level(p.pin.Get())
}

func (p *tinygoPin) Watch(edge Edge, handler func()) error {
	var change machine.PinChange
	switch edge {
	case RisingEdge:
		change = machine.PinRising
	case FallingEdge:
		change = machine.PinFalling
	case BothEdges:
		change = machine.PinToggle
	default:
		return nil
	}

	return p.pin.SetInterrupt(change, func(machine.Pin) {
		handler()
	})
}

func (p *tinygoPin) Unwatch() error {
	// A nil callback disables the pin interrupt.
	return p.pin.SetInterrupt(0, nil)
}

// Config holds the configuration for the TinyGo driver.
type Config struct {
	EncoderConfig
	// APin and BPin are the two quadrature channels.
	APin machine.Pin
	BPin machine.Pin
}

// New creates a rotary encoder driver for TinyGo systems. The edge handler
// runs directly in the pin interrupt.
func New(c Config) (*Encoder, error) {
	if c.APin == machine.NoPin || c.BPin == machine.NoPin {
		return nil, ErrPinNotConfigured
	}
	return NewWithHardware(HardwareConfig{
		EncoderConfig: c.EncoderConfig,
		A:             &tinygoPin{pin: c.APin},
		B:             &tinygoPin{pin: c.BPin},
	})
}
