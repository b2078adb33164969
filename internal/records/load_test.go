package records

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/age/internal/birthday"
	"github.com/specialistvlad/age/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `1970-02-20
1980-05-10 Anne

1980-0510 Broken
1984-02-29 Ben extra words
2023-02-29 NotADay
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".age")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, sampleFile)

	// --- Act ---
	res, err := Load(context.Background(), FileSource{Path: path}, Options{})

	// --- Assert ---
	require.NoError(t, err)
	expected := []birthday.Person{
		{Name: birthday.PrimaryUser, Birth: calendar.MustNew(1970, time.February, 20)},
		{Name: "Anne", Birth: calendar.MustNew(1980, time.May, 10)},
		{Name: "Ben", Birth: calendar.MustNew(1984, time.February, 29)},
	}
	if diff := cmp.Diff(expected, res.People); diff != "" {
		t.Errorf("people mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 4, res.Skipped[0].Line)
	assert.ErrorIs(t, &res.Skipped[0], birthday.ErrInvalidDateFormat)
	assert.Equal(t, 6, res.Skipped[1].Line)
	assert.ErrorIs(t, &res.Skipped[1], birthday.ErrInvalidDate)
}

func TestLoad_Strict(t *testing.T) {
	t.Parallel()

	path := writeFile(t, sampleFile)
	_, err := Load(context.Background(), FileSource{Path: path}, Options{Strict: true})

	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 4, lineErr.Line)
	assert.Equal(t, "1980-0510 Broken", lineErr.Text)
	assert.ErrorIs(t, err, birthday.ErrInvalidDateFormat)
	assert.Contains(t, err.Error(), "line 4:")
}

func TestLoad_StrictIgnoresBlankLines(t *testing.T) {
	t.Parallel()

	src := ReaderSource{Name: "stdin", R: strings.NewReader("\n   \n1980-05-10 Anne\r\n\n")}
	res, err := Load(context.Background(), src, Options{Strict: true})

	require.NoError(t, err)
	require.Len(t, res.People, 1)
	assert.Equal(t, "Anne", res.People[0].Name)
	assert.Empty(t, res.Skipped)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope")
	_, err := Load(context.Background(), FileSource{Path: path}, Options{})

	require.ErrorIs(t, err, ErrUnreadable)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "unable to read file '"+path+"'")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReaderSource_ReadError(t *testing.T) {
	t.Parallel()
	_, err := ReaderSource{Name: "stdin", R: failingReader{}}.Lines(context.Background())
	require.ErrorIs(t, err, ErrUnreadable)
	require.ErrorContains(t, err, "boom")
}

func TestSource_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FileSource{Path: "irrelevant"}.Lines(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
}
