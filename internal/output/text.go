// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"trfind/internal/pretty"
	"trfind/internal/verify"
)

// FormatRowTSV renders one report as a header-ordered row (no trailing newline).
func FormatRowTSV(r verify.Report) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s\t%d\t%s\t%s\t%s\t[%s,%s]\t%d",
		r.SequenceName, r.Start, r.End, r.Period,
		strconv.FormatFloat(r.NumCopies, 'f', 1, 64), r.Size(),
		r.Pattern, r.Region, r.Ideal,
		r.AlignedIdeal, r.AlignedRegion, r.Score,
	)
}

// WriteText prints the header (optional) and one row per report.
func WriteText(w io.Writer, list []verify.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel. The header is written even when
// no report arrives.
func StreamText(w io.Writer, in <-chan verify.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamTextPretty is StreamText with each row followed by its alignment
// drawn as comment lines.
func StreamTextPretty(w io.Writer, in <-chan verify.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
		block := pretty.RenderAlignment(r.AlignedIdeal, r.AlignedRegion, r.Start, pretty.DefaultOptions)
		if _, err := io.WriteString(w, block); err != nil {
			return err
		}
	}
	return nil
}
