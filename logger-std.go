//go:build !tinygo

package rotary

import (
	"log"
)

func init() {
	globalLogger = &stdLogger{prefix: "rotary: "}
}

// stdLogger writes through the standard library log package.
type stdLogger struct {
	prefix string
}

func (l *stdLogger) print(level, msg string) {
	log.Print(level + l.prefix + msg)
}

func (l *stdLogger) Debug(msg string) { l.print("[DEBUG] ", msg) }
func (l *stdLogger) Info(msg string)  { l.print("[INFO]  ", msg) }
func (l *stdLogger) Warn(msg string)  { l.print("[WARN]  ", msg) }
func (l *stdLogger) Error(msg string) { l.print("[ERROR] ", msg) }
