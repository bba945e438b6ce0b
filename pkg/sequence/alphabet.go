package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when an alphabet is built without values.
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one value")

	// ErrDuplicateValue is returned when a value appears twice in an alphabet or hit group.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrHitNotInAlphabet is returned when a hit-group value is not part of the alphabet.
	ErrHitNotInAlphabet = errors.New("hit-group value not in alphabet")
)

var (
	defaultNumbers = []int{-3, -6, -9, -15, 2, 7, 13, 16}
	defaultHits    = []int{-3, -6, -9}

	defaultAlphabet = MustAlphabet(defaultNumbers, defaultHits)
)

// DefaultNumbers returns a copy of the built-in alphabet in display order.
func DefaultNumbers() []int {
	return append([]int(nil), defaultNumbers...)
}

// DefaultHits returns a copy of the built-in hit group.
func DefaultHits() []int {
	return append([]int(nil), defaultHits...)
}

// Alphabet is an immutable, ordered set of distinct integers usable as sequence
// elements, together with its hit group. Accessors return copies, so a shared
// *Alphabet can be handed to any number of goroutines.
type Alphabet struct {
	values []int
	hits   []int
	member map[int]bool // value -> in hit group
}

// NewAlphabet builds an alphabet from numbers, with hits as its hit group.
// Order is preserved; it fixes enumeration order everywhere downstream.
func NewAlphabet(numbers, hits []int) (*Alphabet, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptyAlphabet
	}

	member := make(map[int]bool, len(numbers))
	for _, v := range numbers {
		if _, seen := member[v]; seen {
			return nil, fmt.Errorf("alphabet: %w: %d", ErrDuplicateValue, v)
		}
		member[v] = false
	}

	for _, h := range hits {
		isHit, ok := member[h]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrHitNotInAlphabet, h)
		}
		if isHit {
			return nil, fmt.Errorf("hit group: %w: %d", ErrDuplicateValue, h)
		}
		member[h] = true
	}

	return &Alphabet{
		values: append([]int(nil), numbers...),
		hits:   append([]int{}, hits...),
		member: member,
	}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// Intended for package-level defaults and tests.
func MustAlphabet(numbers, hits []int) *Alphabet {
	a, err := NewAlphabet(numbers, hits)
	if err != nil {
		panic(err)
	}
	return a
}

// Default returns the shared built-in alphabet.
func Default() *Alphabet {
	return defaultAlphabet
}

// Values returns the alphabet in order.
func (a *Alphabet) Values() []int {
	return append([]int(nil), a.values...)
}

// HitGroup returns the hit group in order.
func (a *Alphabet) HitGroup() []int {
	return append([]int{}, a.hits...)
}

// Contains reports whether v is an alphabet value.
func (a *Alphabet) Contains(v int) bool {
	_, ok := a.member[v]
	return ok
}

// IsHit reports whether v belongs to the hit group.
func (a *Alphabet) IsHit(v int) bool {
	return a.member[v]
}

// Span returns the most negative and most positive alphabet values.
func (a *Alphabet) Span() (lo, hi int) {
	lo, hi = a.values[0], a.values[0]
	for _, v := range a.values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Resolve returns the alphabet values permitted by c. The result is ordered and
// duplicate-free. An exact value outside the alphabet resolves to an empty set;
// callers treat that as "no valid assignment" for the position.
func (a *Alphabet) Resolve(c Constraint) []int {
	switch c.kind {
	case KindAny:
		return a.Values()
	case KindHit:
		return a.HitGroup()
	case KindExact:
		if a.Contains(c.value) {
			return []int{c.value}
		}
		return []int{}
	}
	return []int{}
}
