// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"trfind/internal/verify"
	"trfind/pkg/api"
)

// ToAPIRepeat converts a verified report to the stable wire schema (v1).
func ToAPIRepeat(r verify.Report) api.RepeatV1 {
	return api.RepeatV1{
		SequenceID:   r.SequenceName,
		Start:        r.Start,
		End:          r.End,
		Period:       r.Period,
		NumCopies:    r.NumCopies,
		Length:       r.Size(),
		Pattern:      r.Pattern,
		Seq:          r.Region,
		IdealSeq:     r.Ideal,
		AlignedIdeal: r.AlignedIdeal,
		AlignedSeq:   r.AlignedRegion,
		Score:        r.Score,
	}
}

// WriteJSON writes a single JSON array of v1 repeats (pretty-indented).
func WriteJSON(w io.Writer, list []verify.Report) error {
	out := make([]api.RepeatV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRepeat(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
