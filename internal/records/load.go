package records

import (
	"context"
	"fmt"

	"github.com/specialistvlad/age/internal/birthday"
	"github.com/specialistvlad/age/internal/ctxlog"
)

// Options controls what Load does with lines that fail to parse.
type Options struct {
	// Strict makes the first malformed non-blank line abort the load.
	// Otherwise malformed lines are skipped and collected in Result.Skipped.
	Strict bool
}

// LineError ties a parse failure to its 1-based line number.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result is the outcome of Load.
type Result struct {
	People  []birthday.Person // in source order
	Skipped []LineError       // malformed lines; blank lines are not listed
}

// Load reads every line from src and parses it.
func Load(ctx context.Context, src Source, opts Options) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	lines, err := src.Lines(ctx)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("Read birthdate lines.", "count", len(lines))

	var res Result
	for i, line := range lines {
		p, err := birthday.Parse(line)
		if err == nil {
			res.People = append(res.People, p)
			continue
		}
		if birthday.HasKind(err, birthday.KindEmptyRecord) {
			continue
		}

		lineErr := LineError{Line: i + 1, Text: line, Err: err}
		if opts.Strict {
			return Result{}, &lineErr
		}
		logger.Debug("Skipping malformed line.", "line", lineErr.Line, "error", err)
		res.Skipped = append(res.Skipped, lineErr)
	}

	logger.Debug("Parsed birthdate records.", "people", len(res.People), "skipped", len(res.Skipped))
	return res, nil
}
