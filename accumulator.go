package rotary

import (
	"math"
	"sync/atomic"
)

// Accumulator turns detents into signed steps and sums them into a counter
// that the consumer drains.
//
// OnDetent, Add and Drain touch the counter and the last timestamp without
// locking; Encoder calls them inside its critical section. The variable
// speed flag and the multiplier are single-word atomics so the consumer can
// change them at any time.
type Accumulator struct {
	counter  int32
	lastTime uint32

	increment SpeedCurve
	decrement SpeedCurve
	minStep   float32
	maxStep   float32

	variableSpeed atomic.Bool
	multiplier    atomic.Uint32 // math.Float32bits
}

// NewAccumulator creates an accumulator from c, filling in defaults for zero
// fields.
func NewAccumulator(c EncoderConfig) (*Accumulator, error) {
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	a := &Accumulator{
		increment: c.IncrementCurve,
		decrement: c.DecrementCurve,
		minStep:   float32(c.MinStep),
		maxStep:   float32(c.MaxStep),
	}
	a.variableSpeed.Store(!c.DisableVariableSpeed)
	a.SetSpeedMultiplier(c.SpeedMultiplier)
	return a, nil
}

// OnDetent folds one detent recognised at time now (microseconds) into the
// counter. The timestamp is recorded even while variable speed is disabled
// so the next enabled computation measures from the latest detent.
func (a *Accumulator) OnDetent(dir Direction, now uint32) {
	if dir == None {
		return
	}
	step := a.StepSize(dir, now-a.lastTime)
	a.counter += int32(dir) * step
	a.lastTime = now
}

// StepSize returns the unsigned step for a detent in direction dir arriving
// dtMicros after the previous one.
func (a *Accumulator) StepSize(dir Direction, dtMicros uint32) int32 {
	if !a.variableSpeed.Load() {
		return 1
	}
	curve := a.increment
	if dir == CounterClockwise {
		curve = a.decrement
	}
	v := curve.At(float32(dtMicros)/1000) * a.SpeedMultiplier()
	return int32(math.Round(float64(clamp(v, a.minStep, a.maxStep))))
}

// Add adds value to the counter directly, bypassing the decoder.
func (a *Accumulator) Add(value int32) {
	a.counter += value
}

// Drain returns the counter and resets it to zero.
func (a *Accumulator) Drain() int32 {
	v := a.counter
	a.counter = 0
	return v
}

// EnableVariableSpeed turns the speed curves on or off. When off every
// detent counts as one step.
func (a *Accumulator) EnableVariableSpeed(enable bool) {
	a.variableSpeed.Store(enable)
}

// VariableSpeed reports whether the speed curves are in use.
func (a *Accumulator) VariableSpeed() bool {
	return a.variableSpeed.Load()
}

// SetSpeedMultiplier scales the curve output before clamping.
func (a *Accumulator) SetSpeedMultiplier(m float32) {
	a.multiplier.Store(math.Float32bits(m))
}

func (a *Accumulator) SpeedMultiplier() float32 {
	return math.Float32frombits(a.multiplier.Load())
}
