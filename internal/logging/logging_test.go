package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/prizmlabs/prizm/console"
)

// newConsoleLogger builds a Logger over a console writing into a temp dir,
// with terminal output captured and color disabled.
func newConsoleLogger(t *testing.T, verbose, debug bool) (Logger, *console.Console, *bytes.Buffer) {
	t.Helper()

	originalNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = originalNoColor
	})

	c, err := console.New(filepath.Join(t.TempDir(), "log"), true)
	if err != nil {
		t.Fatalf("console.New failed: %v", err)
	}
	var buf bytes.Buffer
	c.SetOutput(&buf)

	return Logger{Verbose: verbose, Debug: debug, Console: c}, c, &buf
}

func TestInfof_GatedByVerbose(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		debug   bool
		want    bool
	}{
		{"silent by default", false, false, false},
		{"shown with verbose", true, false, true},
		{"shown with debug", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _, buf := newConsoleLogger(t, tt.verbose, tt.debug)
			log.Infof("processed %d files", 3)

			got := strings.Contains(buf.String(), "[info] processed 3 files")
			if got != tt.want {
				t.Errorf("Info output present = %t, want %t (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestDebugf_RequiresDebug(t *testing.T) {
	log, _, buf := newConsoleLogger(t, true, false)
	log.Debugf("detail")
	if buf.Len() != 0 {
		t.Errorf("Debug output = %q with only verbose set, want none", buf.String())
	}

	log, _, buf = newConsoleLogger(t, false, true)
	log.Debugf("detail")
	if !strings.Contains(buf.String(), "[debug] detail") {
		t.Errorf("Debug output = %q, want the debug line", buf.String())
	}
}

func TestWarnf_ReachesLogFile(t *testing.T) {
	log, c, buf := newConsoleLogger(t, false, false)
	log.Warnf("low disk: %d%%", 12)

	if !strings.Contains(buf.String(), "WARNING: low disk: 12%") {
		t.Errorf("Terminal output = %q, want the warning", buf.String())
	}

	lines := readLogFile(t, c)
	if !strings.Contains(lines, "WARNING: low disk: 12%") {
		t.Errorf("Log file = %q, want the warning", lines)
	}
}

func TestErrorfAndReturn(t *testing.T) {
	log, _, buf := newConsoleLogger(t, false, false)

	err := log.ErrorfAndReturn("failed after %d retries", 3)
	if err == nil {
		t.Fatalf("ErrorfAndReturn = nil, want an error")
	}
	if err.Error() != "failed after 3 retries" {
		t.Errorf("Error = %q, want %q", err.Error(), "failed after 3 retries")
	}
	if !strings.Contains(buf.String(), "ERROR: failed after 3 retries") {
		t.Errorf("Terminal output = %q, want the error line", buf.String())
	}
}

func readLogFile(t *testing.T, c *console.Console) string {
	t.Helper()
	data, err := os.ReadFile(c.Path())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(data)
}
