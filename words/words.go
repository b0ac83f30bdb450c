package words

import "github.com/vkiriako/trigraph/digraph"

// Op is one Word transform. Ops never mutate their input.
type Op func(digraph.Word) digraph.Word

// FilterShortRuns removes every maximal run of consecutive equal
// states shorter than minDuration. Surviving runs keep their repeats:
// [A A B C C C] with minDuration 2 becomes [A A C C C]. minDuration <=
// 1 keeps everything.
//
// Complexity: O(len(w)).
func FilterShortRuns(w digraph.Word, minDuration int) digraph.Word {
	if minDuration <= 1 {
		return clone(w)
	}
	out := make(digraph.Word, 0, len(w))
	for start := 0; start < len(w); {
		end := start + 1
		for end < len(w) && w[end] == w[start] {
			end++
		}
		if end-start >= minDuration {
			out = append(out, w[start:end]...)
		}
		start = end
	}
	return out
}

// Stride keeps every step-th state starting at index 0: [A B B C A]
// with step 2 becomes [A B A]. step <= 1 keeps everything.
//
// Complexity: O(len(w)/step).
func Stride(w digraph.Word, step int) digraph.Word {
	if step <= 1 {
		return clone(w)
	}
	out := make(digraph.Word, 0, (len(w)+step-1)/step)
	for i := 0; i < len(w); i += step {
		out = append(out, w[i])
	}
	return out
}

// CollapseRuns replaces each run of consecutive equal states by a
// single occurrence. A collapsed word cannot form a self-transition,
// so graphs built from it count only state changes.
//
// Complexity: O(len(w)).
func CollapseRuns(w digraph.Word) digraph.Word {
	out := make(digraph.Word, 0, len(w))
	for i, s := range w {
		if i > 0 && s == w[i-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Pipeline composes ops into a single transform applied left to right.
// An empty pipeline copies its input.
func Pipeline(ops ...Op) Op {
	return func(w digraph.Word) digraph.Word {
		out := clone(w)
		for _, op := range ops {
			out = op(out)
		}
		return out
	}
}

func clone(w digraph.Word) digraph.Word {
	out := make(digraph.Word, len(w))
	copy(out, w)
	return out
}
