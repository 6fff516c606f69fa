package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/pflag"

	"github.com/prizmlabs/prizm/console"
	"github.com/prizmlabs/prizm/internal/configs"
	perrors "github.com/prizmlabs/prizm/internal/errors"
)

var logDirectory string

// addDirectoryFlag registers the shared --directory flag on a flag set.
func addDirectoryFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&logDirectory, "directory", "C", "", "log directory (defaults to the configured directory)")
}

// resolveDirectory picks the log directory: the --directory flag wins, then
// the configured default, then the library default.
func resolveDirectory() string {
	if logDirectory != "" {
		return logDirectory
	}
	config, err := configs.LoadUserConfig()
	if err != nil {
		if !errors.Is(err, perrors.ErrConfigNotFound) {
			Logger.Warnf("Failed to load config: %v", err)
		}
		return console.DefaultDirectory
	}
	if config.Console.Directory != "" {
		return config.Console.Directory
	}
	return console.DefaultDirectory
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure the final message ends with a newline
		if s.FinalMSG != "" && !strings.HasSuffix(s.FinalMSG, "\n") {
			s.FinalMSG += "\n"
		}

		if !verbose && !debug {
			s.Stop()
		} else if s.FinalMSG != "" {
			// In verbose/debug mode, the spinner doesn't run, so we need to print the message manually
			fmt.Print(s.FinalMSG)
		}
	}

	return s, cleanup
}
