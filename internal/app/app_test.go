package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"linesplit/internal/chunker"
	"linesplit/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	a, err := New(&config.Config{
		OutputDir:      dir,
		MaxLinePerFile: 2,
		FileSyncType:   chunker.SyncTypeAll,
	})
	require.NoError(t, err)

	require.NoError(t, a.Run(strings.NewReader("a\nb\nc\n")))

	b, err := os.ReadFile(filepath.Join(dir, "00000000.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(b))

	b, err = os.ReadFile(filepath.Join(dir, "00000001.txt"))
	require.NoError(t, err)
	assert.Equal(t, "c\n", string(b))

	_, err = os.Stat(filepath.Join(dir, "00000002.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunEmptyInput(t *testing.T) {
	dir := t.TempDir()
	a, err := New(&config.Config{OutputDir: dir, MaxLinePerFile: 1024, ShowProgress: true})
	require.NoError(t, err)

	require.NoError(t, a.Run(strings.NewReader("")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunReadError(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("stdin broken")
	a, err := New(&config.Config{OutputDir: dir, MaxLinePerFile: 1})
	require.NoError(t, err)

	err = a.Run(io.MultiReader(strings.NewReader("a\nb\n"), iotest.ErrReader(boom)))
	require.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	// 00000000 и 00000001 записаны, 00000002 создан пустым перед ошибкой
	assert.Len(t, entries, 3)
}

func TestNewRejectsZeroCapacity(t *testing.T) {
	_, err := New(&config.Config{OutputDir: t.TempDir()})
	assert.ErrorIs(t, err, chunker.ErrInvalidCapacity)
}
