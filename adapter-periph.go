//go:build !tinygo

package rotary

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// realPin wraps a gpio.PinIO to satisfy the Pin interface.
type realPin struct {
	gpio.PinIO
	pull      gpio.Pull
	stopWatch chan struct{}
}

func toGPIOPull(pull Pull) gpio.Pull {
	switch pull {
	case PullFloat:
		return gpio.Float
	case PullDown:
		return gpio.PullDown
	case PullUp:
		return gpio.PullUp
	default:
		return gpio.PullNoChange
	}
}

func toGPIOEdge(edge Edge) gpio.Edge {
	switch edge {
	case RisingEdge:
		return gpio.RisingEdge
	case FallingEdge:
		return gpio.FallingEdge
	case BothEdges:
		return gpio.BothEdges
	default:
		return gpio.NoEdge
	}
}

func (p *realPin) In(pull Pull) error {
	p.pull = toGPIOPull(pull)
	return p.PinIO.In(p.pull, gpio.NoEdge)
}

func (p *realPin) Read() Level {
	return Level(p.PinIO.Read() == gpio.High)
}

// Watch enables edge detection and runs handler from a goroutine each time
// an edge is reported. The pull set by In is kept.
func (p *realPin) Watch(edge Edge, handler func()) error {
	if err := p.PinIO.In(p.pull, toGPIOEdge(edge)); err != nil {
		return err
	}

	stop := make(chan struct{})
	p.stopWatch = stop

	go func() {
		for {
			// -1 blocks until an edge or until edge detection is disabled.
			got := p.PinIO.WaitForEdge(-1)
			select {
			case <-stop:
				return
			default:
			}
			if got {
				handler()
			}
		}
	}()
	return nil
}

func (p *realPin) Unwatch() error {
	if p.stopWatch != nil {
		close(p.stopWatch)
		p.stopWatch = nil
	}
	// Disabling edge detection wakes a pending WaitForEdge, which then sees stop.
	return p.PinIO.In(p.pull, gpio.NoEdge)
}

// Config holds the configuration for the Linux/periph.io driver.
type Config struct {
	EncoderConfig
	// APin is the GPIO pin number (BCM numbering) for channel A.
	// Defaults to 17 if not provided.
	APin int
	// BPin is the GPIO pin number (BCM numbering) for channel B.
	// Defaults to 27 if not provided.
	BPin int
}

func openPin(n int) (*realPin, error) {
	name := fmt.Sprintf("GPIO%d", n)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("failed to open pin %s", name)
	}
	return &realPin{PinIO: p, pull: gpio.PullNoChange}, nil
}

// New creates a rotary encoder driver for Linux systems.
// It initializes the periph.io host, opens both channel pins and registers
// the edge handler on them.
func New(c Config) (*Encoder, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	if c.APin == 0 {
		c.APin = 17
	}
	if c.BPin == 0 {
		c.BPin = 27
	}
	if c.APin == c.BPin {
		return nil, fmt.Errorf("channel A and B must use different pins (GPIO%d)", c.APin)
	}

	a, err := openPin(c.APin)
	if err != nil {
		return nil, err
	}
	b, err := openPin(c.BPin)
	if err != nil {
		return nil, err
	}

	return NewWithHardware(HardwareConfig{
		EncoderConfig: c.EncoderConfig,
		A:             a,
		B:             b,
	})
}
