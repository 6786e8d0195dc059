// Package writers turns verified repeats into serialized output.
//
// Writers own all presentation choices; the pipeline only hands them reports
// over a channel, so exactly one goroutine touches the sink. JSON/JSONL go
// through pkg/api (v1) for a stable wire format.
package writers
