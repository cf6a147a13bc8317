package reporters

import (
	"bufio"
	"os"
)

import (
	"github.com/timtadh/sgfilter/config"
)

// File writes the candidate lists to a file in the output directory.
type File struct {
	f   *os.File
	buf *bufio.Writer
}

func NewFile(c *config.Config, filename string) (*File, error) {
	f, err := os.Create(c.OutputFile(filename))
	if err != nil {
		return nil, err
	}
	r := &File{
		f:   f,
		buf: bufio.NewWriter(f),
	}
	return r, nil
}

func (r *File) Report(query int, candidates []int) error {
	return FormatCandidates(r.buf, query, candidates)
}

func (r *File) Close() error {
	err := r.buf.Flush()
	if err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
