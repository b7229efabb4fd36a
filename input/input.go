// Package input acquires the byte streams the word counter consumes.
// Regular files are memory-mapped read-only; anything that cannot be
// mapped falls back to a buffered stream. Directory arguments expand
// to the `.txt` files beneath them.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/yargevad/filepathx"
)

// Source is one opened input. It reads from the mapping when one
// exists and unmaps it on Close.
type Source struct {
	path   string
	file   *os.File
	mapped *[]byte
	reader io.Reader
	size   int64
}

// Expand resolves command-line path arguments into the flat list of
// files to process. File paths pass through untouched, even when they
// do not exist; the caller sees the open failure per file and can skip
// it. A directory argument is recursively globbed for `.txt` files
// and it is an error for it to contain none.
func Expand(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		stat, statErr := os.Stat(arg)
		if statErr != nil || !stat.IsDir() {
			paths = append(paths, arg)
			continue
		}
		textPaths, err := filepathx.Glob(arg + "/**/*.txt")
		if err != nil {
			return nil, err
		}
		if len(textPaths) == 0 {
			return nil, fmt.Errorf(
				"%s does not contain any .txt files", arg)
		}
		paths = append(paths, textPaths...)
	}
	return paths, nil
}

// Open
// Opens a single input for reading. Regular non-empty files get the
// mmap fast path; on any mapping failure the Source silently degrades
// to a buffered stream over the open file.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, statErr := file.Stat()
	if statErr != nil {
		file.Close()
		return nil, statErr
	}
	source := &Source{
		path: path,
		file: file,
		size: stat.Size(),
	}
	if stat.Mode().IsRegular() && stat.Size() > 0 {
		if mapped, mmapErr := readMmap(file); mmapErr == nil {
			source.mapped = mapped
			source.reader = bytes.NewReader(*mapped)
			return source, nil
		}
	}
	source.reader = bufio.NewReader(file)
	return source, nil
}

func (source *Source) Read(p []byte) (int, error) {
	return source.reader.Read(p)
}

// Path returns the path the source was opened from.
func (source *Source) Path() string {
	return source.path
}

// Size returns the file size at open time, 0 for non-regular inputs.
func (source *Source) Size() int64 {
	return source.size
}

// Close unmaps the file when it was mapped and closes it.
func (source *Source) Close() error {
	if source.mapped != nil {
		if err := unmap(source.mapped); err != nil {
			source.file.Close()
			return err
		}
		source.mapped = nil
	}
	return source.file.Close()
}
