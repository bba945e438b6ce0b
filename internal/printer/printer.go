package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable or --no-color
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	// Message colors
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)

	// Badge colors: hit group, positive, negative
	hitBadge      = color.New(color.BgRed, color.FgHiWhite, color.Bold)
	positiveBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	negativeBadge = color.New(color.BgWhite, color.FgBlack)
)

// DisableColor turns off ANSI colors for all subsequent output
func DisableColor() {
	color.NoColor = true
}

// Printer writes user-facing messages. Normal output goes to out,
// errors and their suggestions to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a Printer writing to out and errOut
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// Out returns the writer used for normal output
func (p *Printer) Out() io.Writer {
	return p.out
}

// Success prints a success message in green with a checkmark prefix
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Fprintf(p.out, "✓ %s", msg)
	} else {
		green.Fprint(p.out, msg)
	}
}

// Info prints an informational message in the default color
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Fprintf(p.out, "⚠️  %s", msg)
	} else {
		yellow.Fprint(p.out, msg)
	}
}

// Step prints a step message with emphasis
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintf(p.out, "→ %s", fmt.Sprintf(format, a...))
}

// Faint prints de-emphasized text
func (p *Printer) Faint(format string, a ...any) {
	faint.Fprintf(p.out, format, a...)
}

// Error creates a formatted error message with title, explanation, and suggestions
// Prints the formatted error to errOut with colors and returns a simple error for Cobra
func (p *Printer) Error(title string, explanation string, suggestions []string) error {
	return p.ErrorWithContext(title, explanation, nil, suggestions)
}

// ErrorWithContext creates a formatted error with context details
// Prints the formatted error to errOut with colors and returns a simple error for Cobra
func (p *Printer) ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	// Print title in red
	red.Fprintf(p.errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(p.errOut, "%s\n", explanation)
	}

	// Print context details in a stable order
	if len(context) > 0 {
		keys := make([]string, 0, len(context))
		for key := range context {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintf(p.errOut, "\n")
		for _, key := range keys {
			fmt.Fprintf(p.errOut, "  %s: %s\n", key, context[key])
		}
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(p.errOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.errOut, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return &reportedError{title: title}
}

// reportedError is an error whose details were already written to errOut
type reportedError struct {
	title string
}

func (e *reportedError) Error() string {
	return e.title
}

// IsReported reports whether err was produced by Error or ErrorWithContext
// and so has already been shown to the user.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Signed formats v with an explicit sign for positive values ("+7", "-3", "0")
func Signed(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// Badge renders v as a colored badge: hit-group values red,
// other positives green, other negatives grey
func Badge(v int, hit bool) string {
	text := " " + Signed(v) + " "
	switch {
	case hit:
		return hitBadge.Sprint(text)
	case v > 0:
		return positiveBadge.Sprint(text)
	default:
		return negativeBadge.Sprint(text)
	}
}
