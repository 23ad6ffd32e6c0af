package romfs

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFS(t *testing.T) {
	t.Parallel()

	img := mustImage(t, twoFileImage())

	t.Run("passes fstest", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, fstest.TestFS(img, "README.TXT", "HELLO.DOC"))
	})

	t.Run("open and read", func(t *testing.T) {
		t.Parallel()
		f, err := img.Open("README.TXT")
		require.NoError(t, err)
		defer f.Close()

		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, content)
	})

	t.Run("files support ReadAt", func(t *testing.T) {
		t.Parallel()
		f, err := img.Open("README.TXT")
		require.NoError(t, err)
		defer f.Close()

		ra, ok := f.(io.ReaderAt)
		require.True(t, ok, "files should support random access")
		buf := make([]byte, 2)
		_, err = ra.ReadAt(buf, 1)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x34, 0x56}, buf)
	})

	t.Run("open missing", func(t *testing.T) {
		t.Parallel()
		_, err := img.Open("MISSING.BIN")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("open invalid path", func(t *testing.T) {
		t.Parallel()
		_, err := img.Open("../escape")
		assert.ErrorIs(t, err, fs.ErrInvalid)
	})

	t.Run("stat", func(t *testing.T) {
		t.Parallel()
		info, err := img.Stat("HELLO.DOC")
		require.NoError(t, err)
		assert.Equal(t, "HELLO.DOC", info.Name())
		assert.Equal(t, int64(3), info.Size())
		assert.False(t, info.IsDir())
		assert.Equal(t, time.Date(2023, time.November, 12, 20, 5, 17, 0, time.UTC), info.ModTime())
	})

	t.Run("stat root", func(t *testing.T) {
		t.Parallel()
		info, err := img.Stat(".")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("readfile returns a copy", func(t *testing.T) {
		t.Parallel()
		content, err := img.ReadFile("HELLO.DOC")
		require.NoError(t, err)
		require.Equal(t, []byte{0xAB, 0xCD, 0xEF}, content)

		content[0] = 0x00
		again, err := img.ReadFile("HELLO.DOC")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xAB, 0xCD, 0xEF}, again, "callers may modify the returned slice")
	})

	t.Run("readdir is sorted", func(t *testing.T) {
		t.Parallel()
		entries, err := img.ReadDir(".")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "HELLO.DOC", entries[0].Name())
		assert.Equal(t, "README.TXT", entries[1].Name())
	})

	t.Run("readdir on a file", func(t *testing.T) {
		t.Parallel()
		_, err := img.ReadDir("README.TXT")
		assert.Error(t, err)
	})
}

func TestImageFSDuplicates(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		NewEntry("SAME.BIN", Time{}, []byte{0x01}),
		NewEntry("SAME.BIN", Time{}, []byte{0x02}),
		NewEntry("OTHER.BIN", Time{}, []byte{0x03}),
	}
	buf := make([]byte, SizeRequired(entries))
	_, err := Construct(buf, entries)
	require.NoError(t, err)
	img := mustImage(t, buf)

	t.Run("listing keeps the first occurrence", func(t *testing.T) {
		t.Parallel()
		list, err := img.ReadDir(".")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "OTHER.BIN", list[0].Name())
		assert.Equal(t, "SAME.BIN", list[1].Name())
	})

	t.Run("readfile resolves to the first occurrence", func(t *testing.T) {
		t.Parallel()
		content, err := img.ReadFile("SAME.BIN")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01}, content)
	})
}
