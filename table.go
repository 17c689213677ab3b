package rotary

import (
	"fmt"
	"strings"
)

// Direction is the rotation reported for a recognised detent.
type Direction int8

const (
	// None means the transition did not complete a detent (or was noise).
	None Direction = 0
	// Clockwise increments the counter.
	Clockwise Direction = 1
	// CounterClockwise decrements the counter.
	CounterClockwise Direction = -1
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "unknown"
	}
}

// Mode selects the transition table used by the decoder.
type Mode uint8

const (
	// HalfStep emits a detent at both the 00 and 11 positions of a
	// mechanical click (two events per quadrature cycle).
	HalfStep Mode = iota
	// FullStep emits a detent only at the 11 rest position.
	FullStep
)

func (m Mode) String() string {
	switch m {
	case HalfStep:
		return "half-step"
	case FullStep:
		return "full-step"
	default:
		return "unknown"
	}
}

// ParseMode converts "half-step"/"half" or "full-step"/"full" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half", "half-step", "halfstep":
		return HalfStep, nil
	case "full", "full-step", "fullstep":
		return FullStep, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// transition is one cell of a decoder table: the successor row and the
// direction emitted when entering it.
type transition struct {
	next uint8
	emit Direction
}

// Columns are indexed by the pin sample B<<1 | A. Row 0 is the rest
// position (both channels high with pull-ups).

// halfStepTable rows: start, ccw-begin, cw-begin, start-mid,
// cw-begin-mid, ccw-begin-mid.
var halfStepTable = [6][4]transition{
	{{3, None}, {2, None}, {1, None}, {0, None}},
	{{3, Clockwise}, {0, None}, {1, None}, {0, None}},
	{{3, CounterClockwise}, {2, None}, {0, None}, {0, None}},
	{{3, None}, {5, None}, {4, None}, {0, None}},
	{{3, None}, {3, None}, {4, None}, {0, CounterClockwise}},
	{{3, None}, {5, None}, {3, None}, {0, Clockwise}},
}

// fullStepTable rows: start, ccw-final, ccw-begin, ccw-next,
// cw-begin, cw-final, cw-next.
var fullStepTable = [7][4]transition{
	{{0, None}, {2, None}, {4, None}, {0, None}},
	{{3, None}, {0, None}, {1, None}, {0, CounterClockwise}},
	{{3, None}, {2, None}, {0, None}, {0, None}},
	{{3, None}, {2, None}, {1, None}, {0, None}},
	{{6, None}, {0, None}, {4, None}, {0, None}},
	{{6, None}, {5, None}, {0, None}, {0, Clockwise}},
	{{6, None}, {5, None}, {4, None}, {0, None}},
}

// tableFor returns the transition table for m.
func tableFor(m Mode) ([][4]transition, error) {
	switch m {
	case HalfStep:
		return halfStepTable[:], nil
	case FullStep:
		return fullStepTable[:], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, m)
	}
}
