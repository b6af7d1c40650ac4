// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import (
	"cmp"
	"slices"
)

// Bottom-up natural merge sort. A single fold collects the input into
// already-ordered runs, riding both ascending and descending stretches,
// and the runs are then merged pairwise until one remains.
//
// le must report "less than or equal". Stability rests on two invariants:
// reversing a descending run never swaps equal elements (descending
// extensions are strict, and the insertion cases only place an equal
// element on the side the reversal restores), and the merge takes from
// the left, earlier, run on ties.

// runPhase discriminates the run collector's lookahead states.
type runPhase uint8

const (
	// runEmpty: no element seen yet.
	runEmpty runPhase = iota
	// runSingle: one element buffered, direction still unknown.
	runSingle
	// runSplit: a committed run of two or more elements in direction dir.
	runSplit
	// runPivot: like runSplit, plus one held-back element that fits
	// nowhere in the current run and waits for its successor to decide
	// which run it opens.
	runPivot
)

// runState is the fold state of the run collector. run holds the current
// run in arrival order; dir is true when that run ascends. Closed runs
// accumulate in runs, oldest first.
type runState[T any] struct {
	phase runPhase
	run   []T
	dir   bool
	held  T
	runs  [][]T
}

func (st *runState[T]) feed(v T, le func(a, b T) bool) {
	switch st.phase {
	case runEmpty:
		st.run = append(st.run, v)
		st.phase = runSingle
	case runSingle:
		st.dir = le(st.run[0], v)
		st.run = append(st.run, v)
		st.phase = runSplit
	case runSplit:
		y := st.run[len(st.run)-1]
		x := st.run[len(st.run)-2]
		switch {
		case le(y, v) == st.dir:
			// Extends the run.
			st.run = append(st.run, v)
		case le(x, v) == st.dir:
			// Fits just below the run's edge: slip it in before y.
			st.run[len(st.run)-1] = v
			st.run = append(st.run, y)
		case len(st.run) == 2:
			// A two-element run can still absorb at the far side.
			st.run = []T{v, x, y}
		default:
			st.held = v
			st.phase = runPivot
		}
	case runPivot:
		y := st.run[len(st.run)-1]
		x := st.run[len(st.run)-2]
		switch {
		case le(y, v) == st.dir:
			st.run = append(st.run, v)
		case le(x, v) == st.dir:
			st.run[len(st.run)-1] = v
			st.run = append(st.run, y)
		default:
			// The successor didn't rejoin the run either: the held
			// element opens the next run, in whichever direction it
			// and the successor suggest.
			dir := le(st.held, v) == st.dir
			held := st.held
			st.closeRun()
			if !dir {
				st.dir = !st.dir
			}
			st.run = append(st.run, held, v)
			st.phase = runSplit
		}
	}
}

// closeRun moves the current run onto the closed list, reversing it first
// when it was collected descending.
func (st *runState[T]) closeRun() {
	if !st.dir {
		slices.Reverse(st.run)
	}
	st.runs = append(st.runs, st.run)
	st.run = nil
}

// finish flushes the collector and returns every run, oldest first.
func (st *runState[T]) finish() [][]T {
	switch st.phase {
	case runSingle:
		st.runs = append(st.runs, st.run)
	case runSplit:
		st.closeRun()
	case runPivot:
		held := st.held
		st.closeRun()
		st.runs = append(st.runs, []T{held})
	}
	return st.runs
}

// mergeRuns merges adjacent run pairs until a single run remains.
func mergeRuns[T any](runs [][]T, le func(a, b T) bool) []T {
	if len(runs) == 0 {
		return nil
	}
	for len(runs) > 1 {
		merged := make([][]T, 0, (len(runs)+1)/2)
		for i := 0; i+1 < len(runs); i += 2 {
			merged = append(merged, mergePair(runs[i], runs[i+1], le))
		}
		if len(runs)%2 == 1 {
			merged = append(merged, runs[len(runs)-1])
		}
		runs = merged
	}
	return runs[0]
}

// mergePair merges two ordered runs, taking from the earlier run on ties.
func mergePair[T any](a, b []T, le func(a, b T) bool) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if le(a[i], b[j]) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// Sort returns the elements in ascending order. The sort is stable.
func Sort[T cmp.Ordered](e Enumerable[T]) []T {
	return SortWith(e, lessEqual[T])
}

// SortWith returns the elements ordered by le, which must report "less
// than or equal" and describe a total order. The sort is stable: elements
// le considers equal keep their encounter order.
func SortWith[T any](e Enumerable[T], le func(a, b T) bool) []T {
	var st runState[T]
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		st.feed(v, le)
		return Continue(nil)
	}))
	return mergeRuns(st.finish(), le)
}

// SortBy returns the elements in ascending order of key. The sort is
// stable and key runs exactly once per element: elements are tagged with
// their key up front, ordered by tag, then untagged.
func SortBy[T any, K cmp.Ordered](e Enumerable[T], key func(T) K) []T {
	return SortByWith(e, key, lessEqual[K])
}

// SortByWith is [SortBy] under a caller-supplied "less than or equal" on
// keys.
func SortByWith[T, K any](e Enumerable[T], key func(T) K, le func(a, b K) bool) []T {
	var st runState[Pair[K, T]]
	leTagged := func(a, b Pair[K, T]) bool { return le(a.Fst, b.Fst) }
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		st.feed(Pair[K, T]{Fst: key(v), Snd: v}, leTagged)
		return Continue(nil)
	}))
	tagged := mergeRuns(st.finish(), leTagged)
	out := make([]T, len(tagged))
	for i, p := range tagged {
		out[i] = p.Snd
	}
	return out
}

func lessEqual[T cmp.Ordered](a, b T) bool { return a <= b }
