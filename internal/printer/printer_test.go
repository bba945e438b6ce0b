package printer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(t *testing.T) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	return New(out, errOut), out, errOut
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		p, out, errOut := newTestPrinter(t)
		err := p.Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Empty(t, out.String())
		assert.Equal(t, "Test Error\n\nThis is a test error\n", errOut.String())
	})

	t.Run("prints a single suggestion verbatim", func(t *testing.T) {
		p, _, errOut := newTestPrinter(t)
		err := p.Error("Test Error", "Explanation", []string{"Try this fix"})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "\nTry this fix\n")
	})

	t.Run("numbers multiple suggestions", func(t *testing.T) {
		p, _, errOut := newTestPrinter(t)
		err := p.Error("Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "Either:\n  1. First option\n  2. Second option\n")
	})
}

func TestErrorWithContext(t *testing.T) {
	p, _, errOut := newTestPrinter(t)
	context := map[string]string{
		"Target": "49",
		"Config": "tailsum.yml",
	}
	err := p.ErrorWithContext("Test Error", "Explanation", context, []string{"Fix it"})
	require.Error(t, err)
	require.Equal(t, "Test Error", err.Error())
	assert.Contains(t, errOut.String(), "  Config: tailsum.yml\n  Target: 49\n")
}

func TestMessages(t *testing.T) {
	p, out, _ := newTestPrinter(t)

	p.Success("done\n")
	p.Warning("careful\n")
	p.Step("next\n")
	p.Info("plain %d\n", 1)
	p.Faint("quiet\n")

	assert.Equal(t, "✓ done\n⚠️  careful\n→ next\nplain 1\nquiet\n", out.String())
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+7", Signed(7))
	assert.Equal(t, "-15", Signed(-15))
	assert.Equal(t, "0", Signed(0))
}

func TestBadge(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, " +16 ", Badge(16, false))
	assert.Equal(t, " -3 ", Badge(-3, true))

	color.NoColor = false
	defer func() { color.NoColor = true }()
	assert.NotEqual(t, Badge(-3, true), Badge(-3, false), "hit badges are styled differently")
	assert.Contains(t, Badge(7, false), "+7")
}

func TestIsReported(t *testing.T) {
	p, _, _ := newTestPrinter(t)

	err := p.Error("Reported", "", nil)
	assert.True(t, IsReported(err))
	assert.True(t, IsReported(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsReported(errors.New("plain")))
	assert.False(t, IsReported(nil))
}
