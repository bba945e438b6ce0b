package sequence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConstraint is returned when constraint text is neither a keyword nor an integer.
var ErrInvalidConstraint = errors.New("invalid constraint")

// ConstraintKind discriminates the Constraint variants.
type ConstraintKind uint8

const (
	// KindAny permits every alphabet value
	KindAny ConstraintKind = iota

	// KindHit permits only hit-group values
	KindHit

	// KindExact permits a single value
	KindExact
)

const (
	keywordAny = "any"
	keywordHit = "hit"
)

// Constraint restricts which alphabet values may occupy a tail position.
// The zero value is Any.
type Constraint struct {
	kind  ConstraintKind
	value int
}

// Any returns the unconstrained constraint.
func Any() Constraint { return Constraint{kind: KindAny} }

// Hit returns the hit-group constraint.
func Hit() Constraint { return Constraint{kind: KindHit} }

// Exact returns a constraint requiring the value v.
func Exact(v int) Constraint { return Constraint{kind: KindExact, value: v} }

// Kind returns the variant of c.
func (c Constraint) Kind() ConstraintKind { return c.kind }

// Value returns the required value for an Exact constraint.
// ok is false for the other kinds.
func (c Constraint) Value() (v int, ok bool) {
	return c.value, c.kind == KindExact
}

// String renders c in its wire form: "any", "hit" or the integer.
func (c Constraint) String() string {
	switch c.kind {
	case KindHit:
		return keywordHit
	case KindExact:
		return strconv.Itoa(c.value)
	default:
		return keywordAny
	}
}

// ParseConstraint parses "any", "hit" or a decimal integer.
// Keywords are case-insensitive and surrounding whitespace is ignored.
func ParseConstraint(s string) (Constraint, error) {
	text := strings.TrimSpace(s)
	switch strings.ToLower(text) {
	case keywordAny:
		return Any(), nil
	case keywordHit:
		return Hit(), nil
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w %q (want %q, %q or an integer)", ErrInvalidConstraint, s, keywordAny, keywordHit)
	}
	return Exact(v), nil
}

// Set implements pflag.Value so constraints can be bound directly to CLI flags.
func (c *Constraint) Set(s string) error {
	parsed, err := ParseConstraint(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Constraint) Type() string { return "constraint" }

// MarshalJSON encodes keywords as strings and exact values as numbers.
func (c Constraint) MarshalJSON() ([]byte, error) {
	if c.kind == KindExact {
		return json.Marshal(c.value)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts "any", "hit", a number, or a numeric string.
func (c *Constraint) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Exact(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConstraint, string(data))
	}
	return c.Set(s)
}

// Tail holds the constraints for the last three positions of a sequence.
type Tail struct {
	ThirdLast  Constraint `json:"req3rd"`
	SecondLast Constraint `json:"req2nd"`
	Last       Constraint `json:"reqLast"`
}

// UniformTail applies the same constraint to all three tail positions.
func UniformTail(c Constraint) Tail {
	return Tail{ThirdLast: c, SecondLast: c, Last: c}
}
