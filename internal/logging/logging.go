package logger

import (
	"fmt"
	"os"

	"github.com/prizmlabs/prizm/console"
)

// Logger prints CLI diagnostics gated by the --verbose and --debug flags.
// When Console is set, output is routed through it so diagnostics land in
// the same log file as everything else; otherwise output goes to the
// process streams directly.
type Logger struct {
	Verbose bool
	Debug   bool
	Console *console.Console
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		l.emit(console.GRE, "[info] "+fmt.Sprintf(msg, args...))
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.emit(console.CYA, "[debug] "+fmt.Sprintf(msg, args...))
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if l.Console != nil {
		_ = l.Console.Warn(fmt.Sprintf(msg, args...))
		return
	}
	fmt.Fprintln(os.Stderr, "WARNING: "+fmt.Sprintf(msg, args...))
}

func (l Logger) Errorf(msg string, args ...any) {
	if l.Console != nil {
		_ = l.Console.Error(fmt.Sprintf(msg, args...))
		return
	}
	fmt.Fprintln(os.Stderr, "ERROR: "+fmt.Sprintf(msg, args...))
}

// ErrorfAndReturn logs the message and returns it as an error for RunE.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return fmt.Errorf(msg, args...)
}

func (l Logger) emit(col console.Color, line string) {
	if l.Console != nil {
		_ = l.Console.OutColor(col, line)
		return
	}
	fmt.Fprintln(os.Stdout, line)
}
