// Package urls loads the list of candidate wallpaper URLs from a text file.
//
// The file holds one URL per line. Surrounding whitespace is trimmed, and
// blank lines and lines starting with '#' are dropped.
package urls

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/glorpus-work/wallers/pkg/errors"
)

// CommentPrefix marks a line in a URL file as a comment.
const CommentPrefix = "#"

// Load reads URLs from r, one per line.
func Load(r io.Reader) ([]string, error) {
	var list []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.IO(err, "read url list")
	}
	return list, nil
}

// LoadFile reads URLs from the file at path. A missing file is a
// configuration error; any other failure is an I/O error.
func LoadFile(path string) ([]string, error) {
	if path == "" {
		return nil, errors.WrapKind(errors.ErrConfig, errors.ErrURLFileRequired, "load urls")
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapKind(errors.ErrConfig, err, "open url file")
		}
		return nil, errors.IOf(err, "open url file %s", path)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}
