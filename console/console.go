package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/prizmlabs/prizm/internal/utils"
)

// DefaultDirectory is where log files are written when no directory is given.
const DefaultDirectory = "./log/"

// Errors returned by Console operations. Wrapped errors carry call-site
// detail; match with errors.Is.
var (
	// ErrDirectory indicates the log directory could not be created or accessed.
	ErrDirectory = errors.New("log directory cannot be created or accessed")

	// ErrLogWrite indicates an append to the log file failed.
	ErrLogWrite = errors.New("failed to append to log file")

	// ErrInvalidColor indicates an unknown color name was supplied.
	ErrInvalidColor = errors.New("unknown color name")
)

// Message carries the optional routing attributes of a Log call.
type Message struct {
	// Color styles the terminal output. Default leaves it unstyled.
	Color Color

	// Label gates the message: when non-empty, the message is emitted only
	// if the label has been registered with AddLabel.
	Label string
}

// Console prints color-coded messages to the terminal and appends plain-text
// copies to a timestamped log file. One log file is created per Console; each
// append opens the file, writes one record, and closes it again, serialized
// by a mutex so concurrent callers never interleave partial lines.
type Console struct {
	directory string
	terminal  bool
	path      string

	mu      sync.Mutex
	logging bool
	labels  []string
	out     io.Writer
}

// Level prefix styles, matching the fixed "LEVEL: message" record format.
var (
	warnStyle  = color.New(color.FgMagenta, color.Bold)
	errorStyle = color.New(color.FgRed, color.Bold)
)

// New creates a Console that logs into directory, creating the directory if
// it does not exist. An empty directory selects DefaultDirectory. terminal
// controls whether Log calls produce terminal output; file logging starts
// enabled. The log file path is <directory>/<unix-ms>.log, fixed for the
// lifetime of the Console, and the file itself is created lazily on first
// write.
func New(directory string, terminal bool) (*Console, error) {
	if directory == "" {
		directory = DefaultDirectory
	}

	if err := utils.EnsurePath(directory); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectory, directory, err)
	}

	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return &Console{
		directory: directory,
		terminal:  terminal,
		logging:   true,
		path:      filepath.Join(directory, stamp+".log"),
		out:       color.Output,
	}, nil
}

// Path returns the log file path for this Console.
func (c *Console) Path() string {
	return c.path
}

// Directory returns the directory log files are written into.
func (c *Console) Directory() string {
	return c.directory
}

// SetOutput redirects terminal output to w. Used by tests and by embedders
// that capture output.
func (c *Console) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = w
}

// AddLabel registers a label so that Log calls tagged with it are emitted.
// Duplicate registrations are permitted and have no additional effect.
func (c *Console) AddLabel(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels = append(c.labels, label)
}

// SetLogging enables or disables file logging for Out and Log. Warn and
// Error always append regardless of this switch.
func (c *Console) SetLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logging = enabled
}

// Warn prints "WARNING: " in bold magenta followed by the space-joined args,
// and appends "WARNING: <args>" to the log file. Both outputs are
// unconditional. A failed append returns an ErrLogWrite-wrapped error.
func (c *Console) Warn(args ...any) error {
	return c.level("WARNING:", warnStyle, args)
}

// Error prints "ERROR: " in bold red followed by the space-joined args, and
// appends "ERROR: <args>" to the log file. Both outputs are unconditional.
func (c *Console) Error(args ...any) error {
	return c.level("ERROR:", errorStyle, args)
}

// Out prints args to the terminal with the default foreground and appends
// them to the log file if file logging is enabled.
func (c *Console) Out(args ...any) error {
	return c.emit(Message{}, false, args)
}

// OutColor prints args to the terminal in the named color and appends them
// (uncolored) to the log file if file logging is enabled. An unknown color
// returns ErrInvalidColor before anything is written.
func (c *Console) OutColor(col Color, args ...any) error {
	return c.emit(Message{Color: col}, false, args)
}

// Log emits args subject to the terminal switch: terminal output only when
// the Console was constructed with terminal enabled, file append only when
// file logging is enabled.
func (c *Console) Log(args ...any) error {
	return c.emit(Message{}, true, args)
}

// LogWith is Log with routing attributes. A message tagged with an
// unregistered label is dropped entirely, producing no output anywhere.
func (c *Console) LogWith(m Message, args ...any) error {
	return c.emit(m, true, args)
}

// level writes a prefixed record: styled prefix plus default-colored args on
// the terminal, the plain "PREFIX: args" line in the file.
func (c *Console) level(prefix string, style *color.Color, args []any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	style.Fprint(c.out, prefix+" ")
	fmt.Fprintln(c.out, args...)

	record := make([]any, 0, len(args)+1)
	record = append(record, prefix)
	record = append(record, args...)
	return c.append(record)
}

// emit is the single output primitive behind Out, OutColor, Log, and
// LogWith. gateTerminal selects Log semantics (terminal output honors the
// terminal switch) over Out semantics (terminal output is unconditional).
func (c *Console) emit(m Message, gateTerminal bool, args []any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, m.Color)
	}

	if m.Label != "" && !c.hasLabel(m.Label) {
		return nil
	}

	if !gateTerminal || c.terminal {
		if err := c.print(m.Color, args); err != nil {
			return err
		}
	}

	if c.logging {
		return c.append(args)
	}
	return nil
}

// print writes one space-joined, newline-terminated line to the terminal,
// styled by col. Terminal writes are assumed reliable; an error here is
// surfaced but not wrapped in the log-write taxonomy.
func (c *Console) print(col Color, args []any) error {
	if col == Default {
		_, err := fmt.Fprintln(c.out, args...)
		return err
	}
	_, err := palette[col].Fprintln(c.out, args...)
	return err
}

// append writes one record to the log file via an open-append-close cycle.
// The directory is re-ensured first so a removed log directory is recreated
// rather than failing every subsequent write. Callers must hold c.mu.
func (c *Console) append(args []any) error {
	if err := utils.EnsurePath(c.directory); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDirectory, c.directory, err)
	}

	// #nosec G306 -- log files are meant to be readable.
	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", ErrLogWrite, c.path, err)
	}
	defer f.Close()

	// Fprintln hands the file a single Write of the whole record, so a
	// failure never leaves a partial line behind a successful return.
	if _, err := fmt.Fprintln(f, args...); err != nil {
		return fmt.Errorf("%w: appending to %s: %v", ErrLogWrite, c.path, err)
	}
	return nil
}

// hasLabel reports whether label has been registered. Callers must hold c.mu.
func (c *Console) hasLabel(label string) bool {
	for _, l := range c.labels {
		if l == label {
			return true
		}
	}
	return false
}
