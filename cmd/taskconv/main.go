package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.version {
		fmt.Println("taskconv " + Version)
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "taskconv"})
	switch {
	case flags.verbose:
		logger.SetLevel(log.DebugLevel)
	case flags.quiet:
		logger.SetLevel(log.ErrorLevel)
	}

	// Trim GOMAXPROCS inside CPU-limited containers before the batch pool
	// sizes itself from it. Error ignored: maxprocs.Set only fails on an
	// invalid GOMAXPROCS env value, in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	if err := run(flags, args, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
