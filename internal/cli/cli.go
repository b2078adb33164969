package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jessevdk/go-flags"

	"github.com/specialistvlad/age/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageExitCode = 2

// options are the flags the tool accepts. Short bool flags may be grouped,
// e.g. "-adl".
type options struct {
	All  bool `short:"a" long:"all" description:"also print ages of other people"`
	Days bool `short:"d" long:"days" description:"output age in days"`
	Long bool `short:"l" long:"long" description:"long output"`
	Sort bool `short:"s" long:"sort" description:"sort in birthday order"`
	Warn bool `short:"w" long:"warn" description:"warn if someone has birthday soon"`

	File     string `short:"f" long:"file" value-name:"PATH" description:"birthdate file, - for stdin (default: ~/.age)"`
	Config   string `short:"c" long:"config" value-name:"PATH" description:"HCL settings file (default: ~/.agerc.hcl if present)"`
	WarnDays int    `long:"warn-days" value-name:"N" default-mask:"14" description:"days ahead to warn about"`
	Today    string `long:"today" value-name:"YYYY-MM-DD" description:"evaluate ages as of this date"`
	Strict   bool   `long:"strict" description:"fail on malformed lines instead of skipping them"`

	LogLevel  string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"log level (default: warn)"`
	LogFormat string `long:"log-format" choice:"text" choice:"json" description:"log format (default: text)"`
}

func newParser(opts *options) *flags.Parser {
	p := flags.NewNamedParser("age", flags.HelpFlag)
	p.Usage = "[-adhlsw] [OPTIONS]"
	p.LongDescription = "Prints your age."
	if _, err := p.AddGroup("Application Options", "", opts); err != nil {
		// Only fails on malformed struct tags.
		panic(err)
	}
	return p
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly (help was printed
// to outW), or an ExitError.
func Parse(args []string, outW io.Writer) (*app.AppConfig, bool, error) {
	slog.Debug("CLI parser started.")
	var opts options
	parser := newParser(&opts)

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprint(outW, flagsErr.Message)
			slog.Debug("Help requested, exiting.")
			return nil, true, nil
		}
		return nil, false, usageError(parser, err.Error())
	}
	if len(rest) > 0 {
		return nil, false, usageError(parser, fmt.Sprintf("unexpected argument %q", rest[0]))
	}

	slog.Debug("Arguments parsed successfully.")

	return &app.AppConfig{
		DataFile:     opts.File,
		SettingsFile: opts.Config,
		All:          opts.All,
		Days:         opts.Days,
		Long:         opts.Long,
		Sort:         opts.Sort,
		Warn:         opts.Warn,
		Strict:       opts.Strict,
		WarnDays:     opts.WarnDays,
		WarnDaysSet:  parser.FindOptionByLongName("warn-days").IsSet(),
		Today:        opts.Today,
		LogLevel:     opts.LogLevel,
		LogFormat:    opts.LogFormat,
	}, false, nil
}

func usageError(parser *flags.Parser, msg string) *ExitError {
	var help bytes.Buffer
	parser.WriteHelp(&help)
	return &ExitError{Code: usageExitCode, Message: msg + "\n\n" + help.String()}
}
