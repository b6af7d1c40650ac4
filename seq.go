// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import "iter"

// seqSource adapts a range-over-func iterator through [iter.Pull], which
// turns the push-style iterator into the pull-style stepping the reduction
// loop needs.
type seqSource[T any] struct {
	seq iter.Seq[T]
}

// FromSeq wraps a Go iterator as an [Enumerable]. Each Reduce call starts
// a fresh pass over seq.
//
// The pull iterator's stop function runs on exhaustion and on halt, so
// iterators backed by resources are released on both exits. A suspended
// traversal keeps the iterator alive until the continuation is driven to
// one of those two ends; discard a [Suspension] you will not resume.
func FromSeq[T any](seq iter.Seq[T]) Enumerable[T] {
	return seqSource[T]{seq: seq}
}

func (s seqSource[T]) Reduce(acc Acc, fn Reducer[T]) Result {
	next, stop := iter.Pull(s.seq)
	return reducePull(next, stop, acc, fn)
}

func reducePull[T any](next func() (T, bool), stop func(), acc Acc, fn Reducer[T]) Result {
	for {
		switch acc.tag {
		case accHalt:
			stop()
			return Halted(acc.value)
		case accSuspend:
			return Suspended(acc.value, func(k Acc) Result {
				return reducePull(next, stop, k, fn)
			})
		}
		v, ok := next()
		if !ok {
			stop()
			return Done(acc.value)
		}
		acc = fn(v, acc.value)
	}
}

func (s seqSource[T]) Count() (int, bool) { return 0, false }

func (s seqSource[T]) Contains(T) (bool, bool) { return false, false }

func (s seqSource[T]) Slice() (int, SliceFunc[T], bool) { return 0, nil, false }

// Values exposes any source as a Go iterator, the outbound counterpart of
// [FromSeq]. Breaking out of the range loop halts the reduction, so the
// source runs its cleanup path.
func Values[T any](e Enumerable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
			if !yield(v) {
				return Halt(nil)
			}
			return Continue(nil)
		})
	}
}
