// Package jsonlutil streams values as JSON lines from a background goroutine.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

const flushSize = 64 << 10

// Encoder converts one value to its wire type and encodes it.
type Encoder[T any] func(*json.Encoder, T) error

// Start returns a channel of values to encode as JSON lines on out, and a
// channel that yields the first error once the input is closed. Errors
// matched by ignore (e.g. a reader that went away) are reported as nil.
//
// After the first error the input is still drained so senders never block.
func Start[T any](out io.Writer, bufSize int, encode Encoder[T], ignore func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() { done <- pump(out, in, encode, ignore) }()
	return in, done
}

func pump[T any](out io.Writer, in <-chan T, encode Encoder[T], ignore func(error) bool) error {
	bw := bufio.NewWriterSize(out, flushSize)
	enc := json.NewEncoder(bw)

	var first error
	for v := range in {
		if first == nil {
			first = encode(enc, v)
		}
	}
	if first == nil {
		first = bw.Flush()
	}
	if first != nil && ignore != nil && ignore(first) {
		return nil
	}
	return first
}
