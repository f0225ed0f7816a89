package writers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWriterType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		output string
		want   WriterType
	}{
		{"", WriterTypeStderr},
		{"stderr", WriterTypeStderr},
		{"STDOUT", WriterTypeStdout},
		{"stdout", WriterTypeStdout},
		{"/var/log/app1.log", WriterTypeFile},
		{"./app1.log", WriterTypeFile},
		{"file:///tmp/app1.log", WriterTypeFile},
		{"redis://localhost:6379", ""},
		{"app1.log", ""},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseWriterType(tt.output))
		})
	}
}

func TestCreateWriter(t *testing.T) {
	t.Parallel()

	t.Run("standard streams", func(t *testing.T) {
		t.Parallel()
		w, err := CreateWriter("")
		require.NoError(t, err)
		assert.Equal(t, os.Stderr, w)

		w, err = CreateWriter("stdout")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, w)
	})

	t.Run("file with missing directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "dir", "out.log")

		w, err := CreateWriter("file://" + path)
		require.NoError(t, err)
		f, ok := w.(*os.File)
		require.True(t, ok)
		t.Cleanup(func() { assert.NoError(t, f.Close()) })

		_, err = f.WriteString("line\n")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "line\n", string(data))
	})

	t.Run("appends to existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.log")
		require.NoError(t, os.WriteFile(path, []byte("first\n"), 0o644))

		w, err := CreateWriter(path)
		require.NoError(t, err)
		f := w.(*os.File)
		t.Cleanup(func() { assert.NoError(t, f.Close()) })

		_, err = f.WriteString("second\n")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(data))
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()
		w, err := CreateWriter("redis://localhost:6379")
		require.Error(t, err)
		assert.Nil(t, w)
	})
}

func TestCloser(t *testing.T) {
	t.Run("standard streams are not closed", func(t *testing.T) {
		require.NoError(t, Closer(os.Stdout).Close())
		require.NoError(t, Closer(os.Stderr).Close())
		_, err := os.Stderr.Write(nil)
		assert.NoError(t, err)
	})

	t.Run("file writer is closed", func(t *testing.T) {
		w, err := CreateWriter(filepath.Join(t.TempDir(), "out.log"))
		require.NoError(t, err)

		require.NoError(t, Closer(w).Close())
		_, err = w.Write([]byte("after close"))
		assert.ErrorIs(t, err, os.ErrClosed)
	})

	t.Run("plain writer gets a no-op", func(t *testing.T) {
		assert.NoError(t, Closer(&bytes.Buffer{}).Close())
	})
}
