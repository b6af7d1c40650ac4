// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import "sync/atomic"

// Stepping boundary for external consumers.
// Step provides shallow element-at-a-time traversal, unlike the operations,
// which drive a reduction to completion in one call.

// Suspension represents a traversal paused after producing one element.
// It holds that element and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a
// suspension; it drives the source's halt path so held resources are
// released.
type Suspension[T any] struct {
	used  atomic.Uintptr
	value T
	k     Continuation
}

// Step starts element-at-a-time traversal of a source.
// Returns the suspension carrying the first element, or nil when the source
// is empty.
//
// Example:
//
//	susp := Step(source)
//	for susp != nil {
//	    consume(susp.Value())
//	    susp = susp.Resume()
//	}
func Step[T any](e Enumerable[T]) *Suspension[T] {
	return classifySuspension[T](e.Reduce(Continue(nil), suspendEach[T]))
}

// suspendEach is the stepping reducer: it surrenders control after every
// element, carrying the element as the suspension payload.
//
// Allocation note: a named generic function compiles to a static funcval
// per instantiation, so passing it allocates nothing, unlike an anonymous
// closure.
func suspendEach[T any](v T, _ Erased) Acc { return Suspend(v) }

// classifySuspension examines a reduction result and classifies it as
// either exhaustion (nil) or a suspension carrying one element.
func classifySuspension[T any](r Result) *Suspension[T] {
	if r.tag != resultSuspended {
		return nil
	}
	return &Suspension[T]{value: r.value.(T), k: r.cont}
}

// Value returns the element this suspension carries. Value does not
// consume the suspension and may be called any number of times.
func (s *Suspension[T]) Value() T { return s.value }

// Resume advances the traversal by one element.
// Returns the next suspension, or nil when the source is exhausted.
// Panics if the suspension has already been resumed or discarded.
func (s *Suspension[T]) Resume() *Suspension[T] {
	if s.used.Add(1) != 1 {
		panic("enum: suspension resumed twice")
	}
	return classifySuspension[T](s.k(Continue(nil)))
}

// TryResume attempts to advance the traversal.
// Returns (next, true) on success, or (nil, false) if already consumed.
func (s *Suspension[T]) TryResume() (*Suspension[T], bool) {
	if s.used.Add(1) != 1 {
		return nil, false
	}
	return classifySuspension[T](s.k(Continue(nil))), true
}

// Discard consumes the suspension without taking another element, resuming
// the continuation with Halt so the source runs its cleanup path.
// Discarding an already-consumed suspension is a no-op.
func (s *Suspension[T]) Discard() {
	if s.used.Add(1) != 1 {
		return
	}
	s.k(Halt(nil))
}
