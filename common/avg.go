package common

// NoValue marks an absent value in RunningAverage.Update arguments.
const NoValue = -1

// RunningAverage accumulates a stream of non-negative sample values keeping
// only their sum and count, so a single sample can be inserted, replaced or
// removed in O(1) without rescanning the history. It is storable with
// std.Serialize, therefore usable both in contract storage and off-chain.
type RunningAverage struct {
	Sum   int
	Count int
}

// Update transitions the accumulator given the previous and the new variants
// of a single sample. NoValue stands for "no sample":
//
//	(NoValue, v)  insertion
//	(p, v)        replacement
//	(p, NoValue)  removal
//	(NoValue, NoValue) no-op
//
// Arithmetic never underflows: removal from an empty accumulator is ignored
// and replacement in an empty accumulator degrades to insertion.
func (a RunningAverage) Update(prev, new int) RunningAverage {
	switch {
	case prev == NoValue && new == NoValue:
		return a
	case prev == NoValue:
		return RunningAverage{Sum: a.Sum + new, Count: a.Count + 1}
	case new == NoValue:
		if a.Count == 0 {
			return a
		}
		return RunningAverage{Sum: clampSum(a.Sum - prev), Count: a.Count - 1}
	default:
		if a.Count == 0 {
			return RunningAverage{Sum: new, Count: 1}
		}
		return RunningAverage{Sum: clampSum(a.Sum + new - prev), Count: a.Count}
	}
}

func clampSum(sum int) int {
	if sum < 0 {
		return 0
	}
	return sum
}

// Value returns the rounded-down average of the accumulated samples, 0 when
// there are none.
func (a RunningAverage) Value() int {
	if a.Count == 0 {
		return 0
	}

	return a.Sum / a.Count
}
