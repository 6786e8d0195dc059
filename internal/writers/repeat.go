// internal/writers/repeat.go
package writers

import (
	"encoding/json"
	"errors"
	"io"
	"syscall"

	"trfind/internal/jsonlutil"
	"trfind/internal/output"
	"trfind/internal/verify"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early; that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

func drain(ch <-chan verify.Report) []verify.Report {
	list := make([]verify.Report, 0, 64)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON array (buffered)
	Register(output.FormatJSON, func(w io.Writer, a Args) error {
		return output.WriteJSON(w, drain(a.In))
	})

	// JSONL streaming
	Register(output.FormatJSONL, func(w io.Writer, a Args) error {
		pipe, done := StartJSONLWriter(w, 64)
		for r := range a.In {
			pipe <- r
		}
		close(pipe)
		return <-done
	})

	Register(output.FormatFASTA, func(w io.Writer, a Args) error {
		return output.StreamFASTA(w, a.In)
	})

	Register(output.FormatText, func(w io.Writer, a Args) error {
		if a.Pretty {
			return output.StreamTextPretty(w, a.In, a.Header)
		}
		return output.StreamText(w, a.In, a.Header)
	})
}

// StartJSONLWriter streams each report as one JSON line (v1).
func StartJSONLWriter(out io.Writer, bufSize int) (chan<- verify.Report, <-chan error) {
	return jsonlutil.Start[verify.Report](out, bufSize,
		func(enc *json.Encoder, r verify.Report) error {
			return enc.Encode(output.ToAPIRepeat(r))
		},
		IsBrokenPipe,
	)
}

// StartRepeatWriter runs the handler for format on its own goroutine. Send
// reports on the returned channel, close it, then read the error.
// The input channel is always drained, even after a write error, so senders
// never block.
func StartRepeatWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- verify.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan verify.Report, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := Write(format, out, Args{Options: opt, In: in})
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
