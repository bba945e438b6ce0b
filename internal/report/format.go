package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dyluth/tailsum/internal/printer"
	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/olekukonko/tablewriter"
)

// tailLabels names the tail positions in display order
var tailLabels = [sequence.TailLength]string{"3rd", "2nd", "Last"}

// Query is the solve request a report describes
type Query struct {
	Target int           `json:"target"`
	Tail   sequence.Tail `json:"constraints"`
}

// FormatText writes a solve result as a human-readable report: the sequence
// breakdown with body and tail, a sum check and the cumulative-sum table.
func FormatText(p *printer.Printer, alphabet *sequence.Alphabet, bounds sequence.Bounds, q Query, res sequence.Result) error {
	if !res.Found {
		p.Warning("No sequence found for target %d (tail: %s, %s, %s)\n",
			q.Target, q.Tail.ThirdLast, q.Tail.SecondLast, q.Tail.Last)
		p.Faint("Searched partial sums in [%d, %d] up to %d body elements.\n",
			bounds.MinSum, bounds.MaxSum, bounds.MaxDepth+1)
		return nil
	}

	p.Success("Optimal solution found (length %d)\n\n", res.TotalLength)

	p.Info("Sequence breakdown\n")
	p.Info("  %s\n", formatBreakdown(alphabet, res))
	p.Info("\nSum check: %d (target: %d)\n\n", res.Sum(), q.Target)

	p.Info("Cumulative sum progression\n")
	return formatSteps(p.Out(), res.CumulativeSteps)
}

// formatBreakdown renders body badges, a connector, then the tail in brackets
// with its position labels.
func formatBreakdown(alphabet *sequence.Alphabet, res sequence.Result) string {
	var b strings.Builder
	for i, v := range res.Body {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(printer.Badge(v, alphabet.IsHit(v)))
	}
	if len(res.Body) > 0 {
		b.WriteString(" ── ")
	}

	b.WriteString("[ ")
	for i, v := range res.Tail {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(tailLabels[i])
		b.WriteString(":")
		b.WriteString(printer.Badge(v, alphabet.IsHit(v)))
	}
	b.WriteString(" ]")
	return b.String()
}

// formatSteps writes the cumulative-sum trace as a table
func formatSteps(w io.Writer, steps []sequence.Step) error {
	table := tablewriter.NewWriter(w)
	table.Header("Step", "Value", "Sum")
	for _, s := range steps {
		value := printer.Signed(s.Value)
		if s.Step == 0 {
			value = "-"
		}
		if err := table.Append([]string{strconv.Itoa(s.Step), value, strconv.Itoa(s.Sum)}); err != nil {
			return fmt.Errorf("failed to add table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// FormatBody writes the outcome of a body-only search
func FormatBody(p *printer.Printer, alphabet *sequence.Alphabet, target int, body []int, found bool) {
	if !found {
		p.Warning("No body sums to %d within the search bounds\n", target)
		return
	}
	if len(body) == 0 {
		p.Success("Target %d needs no body (length 0)\n", target)
		return
	}

	badges := make([]string, len(body))
	for i, v := range body {
		badges[i] = printer.Badge(v, alphabet.IsHit(v))
	}
	p.Success("Shortest body for %d (length %d)\n", target, len(body))
	p.Info("  %s\n", strings.Join(badges, " "))
}

// FormatAlphabet writes the alphabet legend and the active search bounds
func FormatAlphabet(p *printer.Printer, alphabet *sequence.Alphabet, bounds sequence.Bounds) {
	values := alphabet.Values()
	badges := make([]string, len(values))
	for i, v := range values {
		badges[i] = printer.Badge(v, alphabet.IsHit(v))
	}

	hits := alphabet.HitGroup()
	hitText := make([]string, len(hits))
	for i, v := range hits {
		hitText[i] = printer.Signed(v)
	}

	p.Info("Available numbers:\n  %s\n\n", strings.Join(badges, " "))
	p.Info("Hit group: %s\n", strings.Join(hitText, ", "))
	p.Info("Legend: %s positive  %s negative  %s hit group\n\n",
		printer.Badge(1, false), printer.Badge(-1, false), printer.Badge(-1, true))
	p.Faint("Search window [%d, %d], max depth %d\n", bounds.MinSum, bounds.MaxSum, bounds.MaxDepth)
}

// FormatJSON writes a result as pretty-printed JSON.
func FormatJSON(w io.Writer, res sequence.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	// Add newline for clean output
	fmt.Fprintln(w)
	return nil
}

// FormatJSONL writes a result as a single line of JSON, tagged with its query.
// This format is ideal for piping to tools like jq.
func FormatJSONL(w io.Writer, q Query, res sequence.Result) error {
	line := struct {
		Query
		sequence.Result
	}{q, res}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write JSONL output: %w", err)
	}
	return nil
}
