// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"

	perr "trfind/internal/errors"
)

// Record is one FASTA entry with its sequence upper-cased.
type Record struct {
	ID  string
	Seq []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 << 20

// Stream parses path ("-" for stdin, ".gz" transparently) and calls emit for
// every record in file order. It returns promptly when ctx is done.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInput, "open %s", path)
	}
	defer rc.Close()
	if err := StreamReader(ctx, rc, emit); err != nil {
		if _, ours := perr.As(err); ours || ctx.Err() != nil {
			return err
		}
		return perr.Wrapf(err, perr.ErrorCodeInput, "read %s", path)
	}
	return nil
}

// StreamReader is Stream over an already opened reader.
func StreamReader(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLine)

	var (
		id     string
		seq    = make([]byte, 0, 1<<16)
		inside bool
	)
	flush := func() error {
		if !inside {
			return nil
		}
		return emit(Record{ID: id, Seq: bytes.Clone(seq)})
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, seq, inside = headerID(line[1:]), seq[:0], true
			continue
		}
		if !inside {
			return perr.New(perr.ErrorCodeInput, "sequence data before first '>' header")
		}
		seq = append(seq, bytes.ToUpper(bytes.TrimSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return flush()
}

// Open returns a reader for path, handling "-" and gzip.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return gzFile{Reader: gr, f: fh}, nil
	}
	return fh, nil
}

type gzFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gerr
}

func headerID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
