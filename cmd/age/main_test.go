package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/age/internal/app"
	"github.com/specialistvlad/age/internal/calendar"
	"github.com/specialistvlad/age/internal/clock"
	"github.com/specialistvlad/age/internal/cli"
	"github.com/stretchr/testify/require"
)

// fakeHome creates a home directory with a birthdate file and returns the
// options that point the app at it on a fixed date.
func fakeHome(t *testing.T, data string) []app.Option {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".age"), []byte(data), 0600))
	return []app.Option{
		app.WithHomeDir(func() (string, error) { return home, nil }),
		app.WithClock(clock.NewFixed(calendar.MustNew(2024, time.May, 9))),
		app.WithEnv(func(string) string { return "" }),
	}
}

func TestRun_PrintsAge(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	opts := fakeHome(t, "1970-02-20\n1980-05-10 Anne\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, nil, opts...)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "You are 54 years old\n", out.String())
}

func TestRun_GroupedFlags(t *testing.T) {
	t.Parallel()

	opts := fakeHome(t, "1970-02-20\n1980-05-10 Anne\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-aw"}, opts...)

	require.NoError(t, err)
	require.Equal(t,
		"Warning: Anne's birthday is tomorrow\n"+
			"You are 54 years old\n"+
			"Anne is 43 years old\n",
		out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr, "run() should return an ExitError when argument parsing fails")
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag")
}

func TestRun_MissingDataFile(t *testing.T) {
	t.Parallel()

	opts := fakeHome(t, "")
	missing := filepath.Join(t.TempDir(), "gone")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-f", missing}, opts...)

	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to read file '"+missing+"'")
}

func TestRun_NegativeWarnDaysRejected(t *testing.T) {
	t.Parallel()

	opts := fakeHome(t, "1980-05-10 Anne\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-w", "--warn-days=-1"}, opts...)

	require.ErrorContains(t, err, "warn days must not be negative, got -1")
	require.Empty(t, out.String())
}

func TestRun_FileFromStdin(t *testing.T) {
	t.Parallel()

	opts := append(fakeHome(t, ""), app.WithStdin(bytes.NewBufferString("1980-05-10 Anne\n")))
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-a", "-f", "-"}, opts...)

	require.NoError(t, err)
	require.Equal(t, "Anne is 43 years old\n", out.String())
}
