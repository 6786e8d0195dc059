// internal/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perr "trfind/internal/errors"
)

const plain = `>seq1 first record
acgt
ACGT
>seq2
NNnn

>empty
>seq3
GATTACA
`

func collect(t *testing.T, path string) []Record {
	t.Helper()
	var recs []Record
	if err := Stream(context.Background(), path, func(r Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("stream %s: %v", path, err)
	}
	return recs
}

func writeGz(t *testing.T, name string, data string) string {
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil { t.Fatalf("tmp: %v", err) }
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil { t.Fatalf("write gz: %v", err) }
	gw.Close(); fh.Close()
	return path
}

func TestStreamPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(plain), 0o644); err != nil {
		t.Fatal(err)
	}
	recs := collect(t, path)
	if len(recs) != 4 {
		t.Fatalf("records = %d, want 4", len(recs))
	}
	if recs[0].ID != "seq1" || string(recs[0].Seq) != "ACGTACGT" {
		t.Fatalf("rec0 = %q %q", recs[0].ID, recs[0].Seq)
	}
	if string(recs[1].Seq) != "NNNN" {
		t.Fatalf("rec1 not upper-cased: %q", recs[1].Seq)
	}
	if recs[2].ID != "empty" || len(recs[2].Seq) != 0 {
		t.Fatalf("empty record = %+v", recs[2])
	}
	if string(recs[3].Seq) != "GATTACA" {
		t.Fatalf("rec3 = %q", recs[3].Seq)
	}
}

func TestStreamGzip(t *testing.T) {
	recs := collect(t, writeGz(t, "test.fa.gz", plain))
	if len(recs) != 4 || recs[0].ID != "seq1" || recs[3].ID != "seq3" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestStreamStdin(t *testing.T) {
	// fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() { io.WriteString(w, plain); w.Close() }()

	if n := len(collect(t, "-")); n != 4 {
		t.Fatalf("expected 4 records from stdin, got %d", n)
	}
}

func TestStreamErrors(t *testing.T) {
	err := Stream(context.Background(), filepath.Join(t.TempDir(), "missing.fa"), func(Record) error { return nil })
	if !perr.IsCode(err, perr.ErrorCodeInput) {
		t.Fatalf("missing file: %v", err)
	}
	err = StreamReader(context.Background(), strings.NewReader("ACGT\n>x\nA\n"), func(Record) error { return nil })
	if !perr.IsCode(err, perr.ErrorCodeInput) {
		t.Fatalf("headerless data: %v", err)
	}
}

func TestStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamReader(ctx, strings.NewReader(plain), func(Record) error { return nil })
	if err != context.Canceled {
		t.Fatalf("err = %v", err)
	}
}
