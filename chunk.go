// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// Leftover selects what [ChunkEveryStep] does with a trailing chunk
// shorter than the chunk size.
type Leftover[T any] struct {
	pad     []T
	discard bool
}

// LeftoverKeep emits the trailing partial chunk as-is.
func LeftoverKeep[T any]() Leftover[T] { return Leftover[T]{} }

// LeftoverDiscard drops the trailing partial chunk.
func LeftoverDiscard[T any]() Leftover[T] { return Leftover[T]{discard: true} }

// LeftoverPad tops the trailing partial chunk up to the chunk size with
// elements drawn from pad, emitting it short if pad runs out too.
func LeftoverPad[T any](pad []T) Leftover[T] { return Leftover[T]{pad: pad} }

// ChunkWhile folds the source into chunks under a caller-defined
// windowing rule, the primitive the fixed-shape chunking operations are
// configurations of.
//
// step receives each element with the chunk state so far and returns the
// chunk to emit at this element (emit true) together with the successor
// state, or emit false to keep accumulating. flush runs once after the
// last element and may emit one final chunk from whatever state remains.
func ChunkWhile[T, A, C any](e Enumerable[T], acc A, step func(T, A) (C, bool, A), flush func(A) (C, bool)) []C {
	var out []C
	st := acc
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		c, emit, next := step(v, st)
		if emit {
			out = append(out, c)
		}
		st = next
		return Continue(nil)
	}))
	if c, emit := flush(st); emit {
		out = append(out, c)
	}
	return out
}

// chunkState carries the fixed-shape chunker's fold state: the window
// being filled and, when the step overshoots the chunk size, how many
// upcoming elements to skip entirely.
type chunkState[T any] struct {
	window []T
	skip   int
}

// ChunkEvery cuts the source into consecutive chunks of count elements;
// the last chunk may be shorter. Panics if count is not positive.
func ChunkEvery[T any](e Enumerable[T], count int) [][]T {
	return ChunkEveryStep(e, count, count, LeftoverKeep[T]())
}

// ChunkEveryStep cuts the source into chunks of count elements, starting
// a new chunk every step elements. A step smaller than count makes chunks
// overlap; a larger one skips elements between chunks. leftover selects
// the fate of a trailing chunk shorter than count. Panics if count or
// step is not positive.
func ChunkEveryStep[T any](e Enumerable[T], count, step int, leftover Leftover[T]) [][]T {
	if count < 1 {
		badArg("chunk size must be positive")
	}
	if step < 1 {
		badArg("chunk step must be positive")
	}
	return ChunkWhile(e, chunkState[T]{},
		func(v T, st chunkState[T]) ([]T, bool, chunkState[T]) {
			if st.skip > 0 {
				st.skip--
				return nil, false, st
			}
			st.window = append(st.window, v)
			if len(st.window) < count {
				return nil, false, st
			}
			full := st.window
			if step < count {
				// Overlap: the window tail seeds the next chunk.
				st.window = append([]T(nil), full[step:]...)
			} else {
				st.window = nil
				st.skip = step - count
			}
			return full, true, st
		},
		func(st chunkState[T]) ([]T, bool) {
			if leftover.discard || len(st.window) == 0 {
				return nil, false
			}
			short := count - len(st.window)
			pad := leftover.pad[:min(short, len(leftover.pad))]
			return append(st.window, pad...), true
		})
}

// runOf carries a ChunkBy run and the key that admitted its elements.
type runOf[T any, K comparable] struct {
	run []T
	key K
}

// ChunkBy cuts the source where key changes: each chunk is a maximal run
// of consecutive elements mapping to the same key.
func ChunkBy[T any, K comparable](e Enumerable[T], key func(T) K) [][]T {
	return ChunkWhile(e, runOf[T, K]{},
		func(v T, st runOf[T, K]) ([]T, bool, runOf[T, K]) {
			k := key(v)
			if len(st.run) == 0 || k == st.key {
				return nil, false, runOf[T, K]{run: append(st.run, v), key: k}
			}
			return st.run, true, runOf[T, K]{run: []T{v}, key: k}
		},
		func(st runOf[T, K]) ([]T, bool) {
			return st.run, len(st.run) > 0
		})
}
