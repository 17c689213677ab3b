package rotary

// Level represents the logical level of an encoder channel (Low or High).
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Pull represents the internal pull-up/down resistor state.
type Pull uint8

const (
	PullNoChange Pull = iota
	PullFloat
	PullDown
	PullUp
)

// Edge represents the signal edge that triggers the edge handler.
type Edge uint8

const (
	NoEdge Edge = iota
	RisingEdge
	FallingEdge
	BothEdges
)

// Pin represents one channel (A or B) of the encoder wired to a GPIO input.
type Pin interface {
	// In sets the pin as input with the given pull mode.
	In(pull Pull) error
	// Read returns the current level of the pin.
	Read() Level
	// Watch registers handler to run on the specified edge.
	// The handler may run in interrupt context and must not block.
	Watch(edge Edge, handler func()) error
	// Unwatch removes the handler.
	Unwatch() error
}

// Clock returns a monotonic timestamp in microseconds.
// The value is allowed to wrap around; only differences are used.
type Clock func() uint32
