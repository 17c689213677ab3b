package rotary

import (
	"errors"
	"testing"
)

// Samples are B<<1 | A. With pull-ups the rest position is 0b11.
var (
	cwCycle  = []uint8{0b10, 0b00, 0b01, 0b11}
	ccwCycle = []uint8{0b01, 0b00, 0b10, 0b11}
)

func feed(d *Decoder, samples []uint8) []Direction {
	out := make([]Direction, 0, len(samples))
	for _, s := range samples {
		out = append(out, d.Step(s))
	}
	return out
}

func count(dirs []Direction) (cw, ccw int) {
	for _, d := range dirs {
		switch d {
		case Clockwise:
			cw++
		case CounterClockwise:
			ccw++
		}
	}
	return cw, ccw
}

func TestTablesAreTotal(t *testing.T) {
	for _, m := range []Mode{HalfStep, FullStep} {
		table, err := tableFor(m)
		if err != nil {
			t.Fatalf("tableFor(%s) failed: %v", m, err)
		}
		for row := range table {
			for col := 0; col < 4; col++ {
				if next := table[row][col].next; int(next) >= len(table) {
					t.Errorf("%s: row %d col %d points to missing row %d", m, row, col, next)
				}
			}
		}
	}
	if len(halfStepTable) != 6 || len(fullStepTable) != 7 {
		t.Errorf("Expected 6 half-step and 7 full-step rows, got %d and %d", len(halfStepTable), len(fullStepTable))
	}
}

func TestDecoderHalfStep(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint8
		want    []Direction
	}{
		{"cw", cwCycle, []Direction{None, Clockwise, None, Clockwise}},
		{"ccw", ccwCycle, []Direction{None, CounterClockwise, None, CounterClockwise}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := NewDecoder(HalfStep)
			got := feed(d, tt.samples)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
			if d.State() != 0 {
				t.Errorf("Expected decoder back at rest, got row %d", d.State())
			}
		})
	}
}

func TestDecoderFullStep(t *testing.T) {
	d, _ := NewDecoder(FullStep)
	if got := feed(d, cwCycle); got[3] != Clockwise || got[0] != None || got[1] != None || got[2] != None {
		t.Errorf("Expected a single cw at rest, got %v", got)
	}
	if got := feed(d, ccwCycle); got[3] != CounterClockwise || got[0] != None || got[1] != None || got[2] != None {
		t.Errorf("Expected a single ccw at rest, got %v", got)
	}
}

func TestDecoderRejectsDoubleTransitions(t *testing.T) {
	for _, m := range []Mode{HalfStep, FullStep} {
		d, _ := NewDecoder(m)
		var samples []uint8
		for i := 0; i < 10; i++ {
			// Both channels flip between samples.
			samples = append(samples, 0b00, 0b11, 0b10, 0b01, 0b11)
		}
		cw, ccw := count(feed(d, samples))
		if cw != 0 || ccw != 0 {
			t.Errorf("%s: expected no detents, got cw=%d ccw=%d", m, cw, ccw)
		}
	}
}

func TestDecoderBounce(t *testing.T) {
	// A cw click where every edge chatters once before settling.
	bouncy := []uint8{0b10, 0b11, 0b10, 0b00, 0b10, 0b00, 0b01, 0b00, 0b01, 0b11, 0b01, 0b11}
	tests := []struct {
		mode   Mode
		wantCW int
	}{
		{HalfStep, 2},
		{FullStep, 1},
	}
	for _, tt := range tests {
		d, _ := NewDecoder(tt.mode)
		cw, ccw := count(feed(d, bouncy))
		if cw != tt.wantCW || ccw != 0 {
			t.Errorf("%s: expected cw=%d ccw=0, got cw=%d ccw=%d", tt.mode, tt.wantCW, cw, ccw)
		}
	}
}

func TestDecoderNetCount(t *testing.T) {
	pattern := []int{1, 1, -1, 1, -1, -1, -1, 1, 1, 1, 1, -1}
	for _, m := range []Mode{HalfStep, FullStep} {
		d, _ := NewDecoder(m)
		perCycle := 2
		if m == FullStep {
			perCycle = 1
		}
		net := 0
		for _, p := range pattern {
			cycle := cwCycle
			if p < 0 {
				cycle = ccwCycle
			}
			for _, dir := range feed(d, cycle) {
				net += int(dir)
			}
		}
		want := 0
		for _, p := range pattern {
			want += p * perCycle
		}
		if net != want {
			t.Errorf("%s: expected net %d, got %d", m, want, net)
		}
	}
}

func TestNewDecoderInvalidMode(t *testing.T) {
	if _, err := NewDecoder(Mode(7)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Expected ErrInvalidMode, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":          HalfStep,
		"half":      HalfStep,
		"Half-Step": HalfStep,
		"full":      FullStep,
		"full-step": FullStep,
	}
	for in, want := range tests {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %s, %v; expected %s", in, got, err, want)
		}
	}
	if _, err := ParseMode("quarter"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Expected ErrInvalidMode for unknown mode, got %v", err)
	}
}
