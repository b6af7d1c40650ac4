// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package enum provides a suspendable enumeration protocol and an eager
// operation library over it.
//
// The core contract is [Enumerable]: a source exposes one mandatory
// capability, Reduce, plus three optional cheap queries. Every operation
// bottoms out in Reduce, so implementing a single method is enough to give
// a new source the whole library; the cheap queries only buy shortcuts.
//
// # Reduction Protocol
//
// A reduction feeds elements to a [Reducer], which answers with a tagged
// accumulator after each one. The tag is the reducer's control channel over
// the traversal:
//
//   - [Continue]: feed the next element
//   - [Halt]: stop for good, running the source's cleanup path
//   - [Suspend]: pause resumably, capturing the rest of the traversal
//
// The traversal's outcome is a tagged [Result]:
//
//   - [Done]: the source ran out of elements
//   - [Halted]: the reducer stopped it
//   - [Suspended]: the reducer paused it; the result carries a [Continuation]
//
// Payloads cross the protocol type-erased as [Erased]; operations recover
// concrete types by assertion at their own boundary. [ReduceSlice] is the
// canonical driving loop for sources holding their elements in memory.
//
// # Sources
//
//   - [FromSlice]: ordered in-memory sequence; cheap count and positions
//   - [FromMap]: unordered key/value entries as [Pair]; cheap count and membership
//   - [Range], [RangeStep]: arithmetic progression; every query answered in O(1)
//   - [FromFunc]: generator callable via [GeneratorFunc], possibly unbounded
//   - [FromSeq]: range-over-func iterator, pulled one element at a time
//   - [Values]: the outbound bridge, any source as an [iter.Seq]
//
// # Operations
//
// Folds and searches:
//
//   - [Reduce], [ReduceWhile], [MapReduce], [Scan]
//   - [Count], [CountBy], [IsEmpty], [Contains]
//   - [Sum], [SumBy], [Product] over [Number] elements
//   - [All], [Any], [Find], [FindIndex], [FindValue], [Each]
//
// List builders:
//
//   - [ToSlice], [Map], [Filter], [Reject], [FlatMap]
//   - [Uniq], [UniqBy], [Dedup], [DedupBy]
//   - [Intersperse], [MapIntersperse], [MapEvery], [WithIndex]
//   - [Concat], [Reverse], [ReverseSlice], [Slide]
//
// Positions and windows (negative indices count back from the end):
//
//   - [At], [Fetch], [Slice], [SliceRange]
//   - [Take], [Drop], [TakeWhile], [DropWhile], [TakeEvery], [DropEvery]
//   - [Split], [SplitWhile], [SplitWith]
//
// Chunking, all configurations of one primitive:
//
//   - [ChunkWhile]: caller-defined windowing rule
//   - [ChunkEvery], [ChunkEveryStep] with a [Leftover] policy
//   - [ChunkBy]
//
// Ordering (stable natural merge sort):
//
//   - [Sort], [SortWith], [SortBy], [SortByWith]
//   - [Max], [Min], [MinMax] and their By and Or variants; ties go to the
//     first element encountered
//
// Randomness, driven by a caller-supplied [Rand]:
//
//   - [Shuffle], [Random], [TakeRandom]
//
// Grouping and rendering:
//
//   - [GroupBy], [GroupByWith], [Frequencies], [FrequenciesBy]
//   - [Join], [MapJoin]
//
// Zipping:
//
//   - [Zip], [ZipWith], [ZipMany], [Unzip]
//
// # Stepping Boundary
//
// [Step] turns a source into element-at-a-time traversal for consumers
// that drive iteration themselves. Each [Suspension] carries one element
// and a one-shot resumption handle:
//
//   - [Suspension.Value]: the element, readable any number of times
//   - [Suspension.Resume]: advance to the next suspension (panics on reuse)
//   - [Suspension.TryResume]: non-panicking variant of Resume
//   - [Suspension.Discard]: abandon, driving the source's halt path
//
// Affine semantics: each [Suspension] may be resumed at most once. The zip
// operations are built on this boundary and discard the suspensions of
// sources that outlive the shortest one.
//
// # Errors
//
// Domain conditions are sentinel errors, caller bugs are panics. [Fetch]
// returns [ErrOutOfBounds]; the extremum and random aggregates return
// [ErrEmpty] unless an Or variant supplies a fallback. Negative counts,
// zero range steps and resumed-twice suspensions panic.
//
// # Example
//
//	evens := enum.Filter(enum.Range(1, 10), func(v int) bool {
//		return v%2 == 0
//	})
//	// evens == []int{2, 4, 6, 8, 10}
//
//	sum := enum.Sum(enum.FromSlice(evens))
//	// sum == 30
//
//	susp := enum.Step(enum.FromSlice([]string{"a", "b"}))
//	for susp != nil {
//		consume(susp.Value())
//		susp = susp.Resume()
//	}
package enum
