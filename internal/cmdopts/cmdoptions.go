package cmdopts

import (
	"errors"
	"fmt"
	"io"

	"github.com/blkpath/blkpath"
	"github.com/blkpath/blkpath/internal/log"
	flags "github.com/jessevdk/go-flags"
)

const (
	ExitCodeOK int32 = iota
	ExitCodeConfigError
	ExitCodeNotFound
	ExitCodeIOError
	ExitCodeParseError
	ExitCodeFatalError
)

// Options contains the command line options.
type Options struct {
	Logging log.CmdOpts `group:"Logging"`
	Version bool        `long:"version" description:"Print version information and exit"`
	Help    bool

	// Path is the file or directory to resolve, taken from the single
	// non-option argument.
	Path string

	ExitCode         int32
	CommandCompleted bool

	OutputWriter io.Writer
}

func addCommands(parser *flags.Parser, opts *Options) {
	_, _ = parser.AddCommand("inventory", "List mounted block devices", "", NewInventoryCommand(opts))
}

// New returns a new instance of Options and immediately executes the subcommand if specified.
// Subcommands are responsible for setting exit code.
// Function prints help message only if options are incorrect.
func New(writer io.Writer) (cmdOpts *Options, err error) {
	cmdOpts = new(Options)
	parser := flags.NewParser(cmdOpts, flags.HelpFlag)
	parser.SubcommandsOptional = true // if no command specified, resolve PATH
	cmdOpts.OutputWriter = writer
	addCommands(parser, cmdOpts)
	nonParsedArgs, err := parser.Parse() // parse and execute subcommand if any
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			cmdOpts.Help = true
		}
		if !flags.WroteHelp(err) && !cmdOpts.CommandCompleted {
			parser.WriteHelp(writer)
		}
		return cmdOpts, err
	}
	if cmdOpts.CommandCompleted { // subcommand executed, nothing to do more
		return
	}
	if len(nonParsedArgs) > 1 { // we expect a single PATH argument at most
		return cmdOpts, fmt.Errorf("unknown argument(s): %v", nonParsedArgs[1:])
	}
	if len(nonParsedArgs) == 1 {
		cmdOpts.Path = nonParsedArgs[0]
	}
	err = cmdOpts.ValidateConfig()
	return
}

func (c *Options) CompleteCommand(code int32) {
	c.CommandCompleted = true
	c.ExitCode = code
}

// Verbose returns true if the debug log is enabled
func (c *Options) Verbose() bool {
	return c.Logging.LogLevel == "debug"
}

// ValidateConfig checks if the configuration is valid.
func (c *Options) ValidateConfig() error {
	if c.Version {
		return nil
	}
	if c.Path == "" {
		return errors.New("no PATH to resolve")
	}
	return nil
}

// ExitCodeFor maps the resolution error taxonomy to process exit codes, so
// callers can branch on the failure kind without parsing stderr.
func ExitCodeFor(err error) int32 {
	var notFound *blkpath.NotFoundError
	var parseErr *blkpath.ParseError
	switch {
	case err == nil:
		return ExitCodeOK
	case errors.As(err, &notFound):
		return ExitCodeNotFound
	case errors.As(err, &parseErr):
		return ExitCodeParseError
	default:
		return ExitCodeIOError
	}
}
