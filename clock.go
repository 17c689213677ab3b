package rotary

import "time"

var epoch = time.Now()

// monotonicMicros returns the microseconds elapsed since package init,
// truncated to 32 bits. It wraps roughly every 71 minutes.
func monotonicMicros() uint32 {
	return uint32(time.Since(epoch).Microseconds())
}
