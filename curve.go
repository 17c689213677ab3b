package rotary

import "fmt"

// SpeedCurve maps the interval between two detents to a step size using two
// control points. Intervals at or below FastMS give FastStep, intervals at or
// above SlowMS give SlowStep, and anything in between is interpolated
// linearly.
type SpeedCurve struct {
	FastMS   float32 // Interval (ms) at or below which FastStep applies
	FastStep float32
	SlowMS   float32 // Interval (ms) at or above which SlowStep applies
	SlowStep float32
}

var (
	// DefaultIncrementCurve: 5ms or less between detents steps by 10,
	// 250ms or more steps by 1.
	DefaultIncrementCurve = SpeedCurve{FastMS: 5, FastStep: 10, SlowMS: 250, SlowStep: 1}
	// DefaultDecrementCurve is steeper than the increment curve so values
	// come down faster than they go up for the same rotation speed.
	DefaultDecrementCurve = SpeedCurve{FastMS: 5, FastStep: 50, SlowMS: 250, SlowStep: 1}
)

// At returns the raw (unclamped, unrounded) step for an interval of dtMS.
func (c SpeedCurve) At(dtMS float32) float32 {
	if dtMS <= c.FastMS {
		return c.FastStep
	}
	if dtMS >= c.SlowMS {
		return c.SlowStep
	}
	return c.FastStep + (dtMS-c.FastMS)*(c.SlowStep-c.FastStep)/(c.SlowMS-c.FastMS)
}

func (c SpeedCurve) isZero() bool {
	return c == SpeedCurve{}
}

func (c SpeedCurve) validate() error {
	if c.FastMS < 0 || c.SlowMS <= c.FastMS {
		return fmt.Errorf("%w: thresholds %.1fms..%.1fms", ErrInvalidCurve, c.FastMS, c.SlowMS)
	}
	if c.FastStep <= 0 || c.SlowStep <= 0 {
		return fmt.Errorf("%w: steps must be positive", ErrInvalidCurve)
	}
	return nil
}

// clamp limits v to [lo, hi]. NaN is mapped to lo.
func clamp(v, lo, hi float32) float32 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
