package rotary

// Decoder is the quadrature state machine. It classifies each pin sample
// as completing a detent in one direction or as nothing. Contact bounce and
// simultaneous changes of both channels walk the table back towards the
// start row without emitting, so no debounce timer is needed.
//
// A Decoder is not safe for concurrent use; Encoder serializes calls to Step
// inside its critical section.
type Decoder struct {
	table [][4]transition
	state uint8
}

// NewDecoder returns a decoder at the rest position using the table for m.
func NewDecoder(m Mode) (*Decoder, error) {
	t, err := tableFor(m)
	if err != nil {
		return nil, err
	}
	return &Decoder{table: t}, nil
}

// Step feeds one pin sample (B<<1 | A) to the state machine and returns the
// direction of the detent it completes, or None.
func (d *Decoder) Step(sample uint8) Direction {
	t := d.table[d.state][sample&0x3]
	d.state = t.next
	return t.emit
}

// State returns the current table row.
func (d *Decoder) State() uint8 {
	return d.state
}

// packSample builds the 2-bit table column from the two channel levels.
func packSample(a, b Level) uint8 {
	var s uint8
	if a == High {
		s |= 0x1
	}
	if b == High {
		s |= 0x2
	}
	return s
}
