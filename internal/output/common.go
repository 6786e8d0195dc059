package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatFASTA}

// TSVHeader is the canonical header row for text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequenceName\tStart\tEnd\tPeriod\tNumReps\tTotalSize\tPattern\tSequence\tIdealSeq\tAlignment\tAlignmentScore"
