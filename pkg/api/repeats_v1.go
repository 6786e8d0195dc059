// pkg/api/repeats_v1.go
package api

// RepeatV1 is the stable JSON/JSONL schema for one verified tandem repeat.
// Coordinates are 0-based and inclusive.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RepeatV1 struct {
	SequenceID   string  `json:"sequence_id"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	Period       int     `json:"period"`
	NumCopies    float64 `json:"num_copies"`
	Length       int     `json:"length"`
	Pattern      string  `json:"pattern"`
	Seq          string  `json:"seq"`
	IdealSeq     string  `json:"ideal_seq"`
	AlignedIdeal string  `json:"aligned_ideal"`
	AlignedSeq   string  `json:"aligned_seq"`
	Score        int     `json:"score"`
}
