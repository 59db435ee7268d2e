package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	c := Console{Out: &buf}

	require.NoError(t, c.Write("Result = 2.5"))
	require.NoError(t, c.Write("Result = NaN"))

	assert.Equal(t, "Result = 2.5\nResult = NaN\n", buf.String())
}

func TestConsoleWriteError(t *testing.T) {
	err := Console{Out: failingWriter{}}.Write("Result = 1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestTextFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "result.txt")

	require.NoError(t, TextFile{Path: path}.Write("Result = 3"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Result = 3", string(data), "file output has no trailing newline")
}

func TestTextFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, TextFile{Path: "result.txt"}.Write("Result = 4"))

	data, err := os.ReadFile(filepath.Join(dir, "result.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Result = 4", string(data))
}

func TestTextFileReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	require.NoError(t, os.WriteFile(path, []byte("Result = 123456789 and more"), 0o644))

	require.NoError(t, TextFile{Path: path}.Write("Result = 9"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Result = 9", string(data))
}

func TestTextFileDirectoryError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := TextFile{Path: filepath.Join(blocker, "result.txt")}.Write("Result = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create result directory")
}

func TestTextFileWriteError(t *testing.T) {
	dir := t.TempDir()

	// Writing to a path that is an existing directory fails
	err := TextFile{Path: dir}.Write("Result = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write result file")
}

func TestFunc(t *testing.T) {
	var got string
	s := Func(func(text string) error {
		got = text
		return nil
	})

	require.NoError(t, s.Write("Result = 0"))
	assert.Equal(t, "Result = 0", got)
}

func TestRegistry(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		reg := NewRegistry("out/result.txt")

		s, err := reg.Lookup(types.OutputConsole)
		require.NoError(t, err)
		assert.IsType(t, Console{}, s)

		s, err = reg.Lookup(types.OutputTextFile)
		require.NoError(t, err)
		assert.Equal(t, TextFile{Path: "out/result.txt"}, s)
	})

	t.Run("register replaces", func(t *testing.T) {
		var buf bytes.Buffer
		reg := NewRegistry("unused.txt")
		reg.Register(types.OutputConsole, Console{Out: &buf})

		s, err := reg.Lookup(types.OutputConsole)
		require.NoError(t, err)
		require.NoError(t, s.Write("hello"))
		assert.Equal(t, "hello\n", buf.String())
	})

	t.Run("missing sink", func(t *testing.T) {
		reg := NewEmptyRegistry()

		_, err := reg.Lookup(types.OutputTextFile)
		assert.ErrorIs(t, err, ErrNoSink)

		_, err = reg.Lookup(types.OutputPolicy(5))
		assert.ErrorIs(t, err, ErrNoSink)
	})
}
