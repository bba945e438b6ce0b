package sequence

// TailLength is the number of constrained positions at the end of a sequence.
const TailLength = 3

// Step is one point of the cumulative-sum trace.
type Step struct {
	Step  int `json:"step"`  // 1-based position; 0 is the synthetic start
	Value int `json:"value"` // element placed at this step
	Sum   int `json:"sum"`   // running total after placing Value
}

// Result is the outcome of a Solve call.
// When Found is false every slice is empty and TotalLength is 0.
type Result struct {
	Sequence        []int  `json:"sequence"`
	Body            []int  `json:"body"`
	Tail            []int  `json:"tail"`
	TotalLength     int    `json:"totalLength"`
	Found           bool   `json:"found"`
	CumulativeSteps []Step `json:"cumulativeSteps"`
}

// NotFound returns the empty result. Slices are non-nil so they encode as [].
func NotFound() Result {
	return Result{
		Sequence:        []int{},
		Body:            []int{},
		Tail:            []int{},
		CumulativeSteps: []Step{},
	}
}

// newResult splits a full sequence into body and tail and builds the trace.
func newResult(seq []int) Result {
	split := len(seq) - TailLength
	return Result{
		Sequence:        seq,
		Body:            append([]int{}, seq[:split]...),
		Tail:            append([]int{}, seq[split:]...),
		TotalLength:     len(seq),
		Found:           true,
		CumulativeSteps: Trace(seq),
	}
}

// Trace returns the cumulative sums of seq, starting with the {0, 0, 0} entry.
func Trace(seq []int) []Step {
	steps := make([]Step, 0, len(seq)+1)
	steps = append(steps, Step{})

	sum := 0
	for i, v := range seq {
		sum += v
		steps = append(steps, Step{Step: i + 1, Value: v, Sum: sum})
	}
	return steps
}

// Sum returns the total of the sequence.
func (r Result) Sum() int {
	total := 0
	for _, v := range r.Sequence {
		total += v
	}
	return total
}
