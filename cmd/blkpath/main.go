package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/blkpath/blkpath"
	"github.com/blkpath/blkpath/internal/cmdopts"
	"github.com/blkpath/blkpath/internal/log"
)

var (
	exitCode atomic.Int32     // Exit code to be returned to the OS
	logger   log.Logger       // Logger for the application
	opts     *cmdopts.Options // Command line options for the application
	err      error
)

var Exit = os.Exit

func main() {

	exitCode.Store(cmdopts.ExitCodeOK)
	defer func() {
		if err := recover(); err != nil {
			exitCode.Store(cmdopts.ExitCodeFatalError)
			log.FallbackLogger.WithField("callstack", string(debug.Stack())).Error(err)
		}
		Exit(int(exitCode.Load()))
	}()

	if opts, err = cmdopts.New(os.Stdout); err != nil {
		fmt.Println(err)
		if !opts.Help {
			exitCode.Store(cmdopts.ExitCodeConfigError)
		}
		return
	}

	// check if some sub-command was executed and exit
	if opts.CommandCompleted {
		exitCode.Store(opts.ExitCode)
		return
	}

	if opts.Version {
		printVersion()
		return
	}

	logger = log.Init(opts.Logging)

	logger.Debugf("opts: %+v", opts)

	dev, err := blkpath.Resolve(opts.Path)
	if err != nil {
		exitCode.Store(cmdopts.ExitCodeFor(err))
		logResolveError(opts.Path, err)
		return
	}

	fmt.Println(dev)
}

// logResolveError renders one line per failure kind so callers get a
// message they can act on, not just an errno.
func logResolveError(path string, err error) {
	var notFound *blkpath.NotFoundError
	var parseErr *blkpath.ParseError
	l := logger.WithField("path", path)
	switch {
	case errors.As(err, &notFound):
		l.WithField("dev", notFound.ID.String()).Error("device identifier maps to no known device node")
	case errors.As(err, &parseErr):
		l.Error("mount table is malformed: ", err)
	default:
		l.Error("resolution failed: ", err)
	}
}
