package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/hype/types"
)

// Format selects a report rendering.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatRaw  Format = "raw"
	FormatJSON Format = "json"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatRaw, FormatJSON}
}

// ParseFormat converts a format name (case-insensitive) to a Format.
//
// Returns:
//   - Format: The parsed format
//   - error: types.ErrInvalidConfig for unknown names
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatText, FormatRaw, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown report format %q (must be one of: text, raw, json)",
			types.ErrInvalidConfig, name)
	}
}

const rule = "----------------------------------------------------------------------------\n"

// WriteBanner writes the header printed before streaming starts in text mode.
func WriteBanner(w io.Writer, input string, partitions int) error {
	_, err := fmt.Fprintf(w, "%sPartitioning Graph: %s\ninto %d partitions\n\n\nStarting Hypergraph Streaming\n%s",
		rule, input, partitions, rule)

	return err
}

// WriteText writes one "name: value" line per score.
//
// Example output:
//
//	sum of external degrees: 0
//	Hyperedges cut: 0
//	K-1: 0
//	node balancing: 0.5
//	edge balancing: 0.5
//	streaming time: 3
func WriteText(w io.Writer, r *Report) error {
	q := r.Quality
	_, err := fmt.Fprintf(w,
		"sum of external degrees: %d\nHyperedges cut: %d\nK-1: %d\nnode balancing: %s\nedge balancing: %s\nstreaming time: %d\n\n",
		q.SumOfExternalDegrees, q.HyperedgeCut, q.KMinus1,
		formatRatio(q.NodeBalancing), formatRatio(q.EdgeBalancing), r.StreamingMillis())

	return err
}

// WriteRaw writes a single line with the columns
// partitions, soed, node balancing, edge balancing, cut, k-1, streaming ms,
// separated by two tabs.
func WriteRaw(w io.Writer, r *Report) error {
	q := r.Quality
	fields := []string{
		strconv.Itoa(r.Partitions),
		strconv.Itoa(q.SumOfExternalDegrees),
		formatRatio(q.NodeBalancing),
		formatRatio(q.EdgeBalancing),
		strconv.Itoa(q.HyperedgeCut),
		strconv.Itoa(q.KMinus1),
		strconv.FormatInt(r.StreamingMillis(), 10),
	}
	_, err := io.WriteString(w, strings.Join(fields, "\t\t")+"\n")

	return err
}

// WriteJSON writes the indented JSON encoding of r followed by a newline.
func WriteJSON(w io.Writer, r *Report) error {
	data, err := EncodeIndent(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

// Render writes r in the given format.
//
// Text output does not include the banner; callers print WriteBanner before
// streaming so it appears ahead of any progress output.
func Render(w io.Writer, f Format, r *Report) error {
	switch f {
	case FormatRaw:
		return WriteRaw(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatText, "":
		return WriteText(w, r)
	default:
		return fmt.Errorf("%w: unknown report format %q", types.ErrInvalidConfig, f)
	}
}

// formatRatio prints up to six significant digits, like a default C++ ostream.
func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
