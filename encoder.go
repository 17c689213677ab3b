package rotary

import (
	"errors"
	"fmt"
)

var (
	ErrPinNotConfigured = errors.New("rotary: channel pin not configured")
	ErrInvalidMode      = errors.New("rotary: invalid decoder mode")
	ErrInvalidCurve     = errors.New("rotary: invalid speed curve")
	ErrInvalidStepRange = errors.New("rotary: invalid step range")
)

const (
	defaultMinStep = 1
	defaultMaxStep = 100
)

// EncoderConfig holds the settings shared by every way of constructing an
// Encoder.
type EncoderConfig struct {
	// Mode selects half-step or full-step decoding.
	// Defaults to HalfStep.
	Mode Mode
	// IncrementCurve is applied to clockwise detents.
	// Defaults to DefaultIncrementCurve if left zero.
	IncrementCurve SpeedCurve
	// DecrementCurve is applied to counter-clockwise detents.
	// Defaults to DefaultDecrementCurve if left zero.
	DecrementCurve SpeedCurve
	// MinStep and MaxStep bound the step size computed from the curves.
	// Default to 1 and 100.
	MinStep int32
	MaxStep int32
	// SpeedMultiplier scales the curve output.
	// Defaults to 1.0 if not provided. Use SetSpeedMultiplier for 0.
	SpeedMultiplier float32
	// DisableVariableSpeed makes every detent count as one step.
	// Variable speed is enabled by default.
	DisableVariableSpeed bool
	// DisablePullups leaves both channels floating instead of enabling the
	// internal pull-up resistors.
	DisablePullups bool
}

func (c *EncoderConfig) applyDefaults() {
	if c.IncrementCurve.isZero() {
		c.IncrementCurve = DefaultIncrementCurve
	}
	if c.DecrementCurve.isZero() {
		c.DecrementCurve = DefaultDecrementCurve
	}
	if c.MinStep == 0 {
		c.MinStep = defaultMinStep
	}
	if c.MaxStep == 0 {
		c.MaxStep = defaultMaxStep
	}
	if c.SpeedMultiplier == 0 {
		c.SpeedMultiplier = 1.0
	}
}

func (c *EncoderConfig) validate() error {
	if _, err := tableFor(c.Mode); err != nil {
		return err
	}
	if c.MinStep < 1 || c.MaxStep < c.MinStep {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidStepRange, c.MinStep, c.MaxStep)
	}
	if err := c.IncrementCurve.validate(); err != nil {
		return fmt.Errorf("increment curve: %w", err)
	}
	if err := c.DecrementCurve.validate(); err != nil {
		return fmt.Errorf("decrement curve: %w", err)
	}
	return nil
}

// Encoder owns all state of one rotary encoder: the decoder, the
// accumulator and the critical section that guards them. The edge handler
// registered on both channels and the consumer-facing methods all go
// through the same Encoder.
type Encoder struct {
	config  HardwareConfig
	cs      criticalSection
	decoder *Decoder
	acc     *Accumulator
}

// handleEdge is registered on both edges of both channels. It samples the
// pins, advances the decoder and accumulates any detent, all inside the
// critical section so the two channel handlers never interleave.
func (e *Encoder) handleEdge() {
	s := e.cs.enter()
	sample := packSample(e.config.A.Read(), e.config.B.Read())
	if dir := e.decoder.Step(sample); dir != None {
		e.acc.OnDetent(dir, e.config.Now())
	}
	e.cs.exit(s)
}

// ReadAndResetCounter returns the rotation accumulated since the previous
// call and resets it to zero. Positive values are clockwise.
// This method is safe to call while edges are being handled.
func (e *Encoder) ReadAndResetCounter() int32 {
	s := e.cs.enter()
	v := e.acc.Drain()
	e.cs.exit(s)
	return v
}

// AddToCounter adds value to the counter as if it had been decoded.
// It is meant for simulators and tests that have no real pulses.
func (e *Encoder) AddToCounter(value int32) {
	s := e.cs.enter()
	e.acc.Add(value)
	e.cs.exit(s)
}

// EnableVariableSpeed turns the speed curves on or off. It takes effect on
// the next detent.
func (e *Encoder) EnableVariableSpeed(enable bool) {
	e.acc.EnableVariableSpeed(enable)
}

// SetSpeedMultiplier scales the step computed from the speed curves. It
// takes effect on the next detent.
func (e *Encoder) SetSpeedMultiplier(m float32) {
	e.acc.SetSpeedMultiplier(m)
}

func (e *Encoder) String() string {
	return fmt.Sprintf("RotaryEncoder(Mode=%s, VariableSpeed=%v, SpeedMultiplier=%.2f, Steps=[%d, %d])",
		e.config.Mode,
		e.acc.VariableSpeed(),
		e.acc.SpeedMultiplier(),
		e.config.MinStep,
		e.config.MaxStep,
	)
}

// Close stops edge handling on both channels.
// Accumulated rotation can still be drained afterwards.
func (e *Encoder) Close() error {
	var errs []error
	if err := e.config.A.Unwatch(); err != nil {
		errs = append(errs, fmt.Errorf("channel A: %w", err))
	}
	if err := e.config.B.Unwatch(); err != nil {
		errs = append(errs, fmt.Errorf("channel B: %w", err))
	}
	if len(errs) > 0 {
		globalLogger.Warn("Failed to release encoder pins")
		return errors.Join(errs...)
	}
	globalLogger.Info("Rotary encoder closed.")
	return nil
}
