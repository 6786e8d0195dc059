package output

import (
	"fmt"
	"io"

	"trfind/internal/verify"
)

func writeFASTARecord(w io.Writer, idx int, r verify.Report) error {
	_, err := fmt.Fprintf(w,
		">%s_tr%d start=%d end=%d period=%d copies=%.1f pattern=%s score=%d\n%s\n",
		r.SequenceName, idx, r.Start, r.End, r.Period, r.NumCopies, r.Pattern, r.Score, r.Region,
	)
	return err
}

// StreamFASTA writes each repeat region as a FASTA record.
func StreamFASTA(w io.Writer, in <-chan verify.Report) error {
	idx := 1
	for r := range in {
		if err := writeFASTARecord(w, idx, r); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// WriteFASTA writes a slice of repeats as FASTA records.
func WriteFASTA(w io.Writer, list []verify.Report) error {
	for i, r := range list {
		if err := writeFASTARecord(w, i+1, r); err != nil {
			return err
		}
	}
	return nil
}
