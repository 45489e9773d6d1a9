package urls

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/wallers/pkg/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "one url per line",
			input:    "http://a/1.jpg\nhttp://b/2.png\n",
			expected: []string{"http://a/1.jpg", "http://b/2.png"},
		},
		{
			name:     "trims surrounding whitespace and CRLF",
			input:    "  http://a/1.jpg \r\n\thttp://b/2.png\t\r\n",
			expected: []string{"http://a/1.jpg", "http://b/2.png"},
		},
		{
			name:     "drops blank and whitespace-only lines",
			input:    "\n\nhttp://a\n   \n\t\nhttp://b",
			expected: []string{"http://a", "http://b"},
		},
		{
			name:     "drops comments",
			input:    "# favourites\nhttp://a\n  # disabled: http://b\n",
			expected: []string{"http://a"},
		},
		{
			name:     "keeps order and duplicates",
			input:    "http://b\nhttp://a\nhttp://b",
			expected: []string{"http://b", "http://a", "http://b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("http://example.com/wall.jpg\n\n"), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://example.com/wall.jpg"}, got)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadFile("")
		assert.ErrorIs(t, err, errors.ErrURLFileRequired)
		assert.ErrorIs(t, err, errors.ErrConfig)
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrConfig)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("directory is an io error", func(t *testing.T) {
		_, err := LoadFile(t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrIO)
	})
}
