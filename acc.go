// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// Erased represents a type-erased accumulator payload.
//
// A single source is reduced under many different payload types over its
// lifetime, so the reduction protocol erases the payload; operations recover
// the concrete type with an assertion at their own boundary, where they know
// what they put in.
type Erased = any

// accTag discriminates the three accumulator states.
type accTag uint8

const (
	accContinue accTag = iota
	accHalt
	accSuspend
)

// Acc is the tagged accumulator a [Reducer] returns after each element.
// The tag directs the driving loop: feed the next element, stop for good,
// or pause in a resumable way.
//
// Acc is a value type; the zero value is Continue with a nil payload.
type Acc struct {
	value Erased
	tag   accTag
}

// Continue directs the traversal to feed the next element, carrying v as
// the running payload.
func Continue(v Erased) Acc { return Acc{value: v} }

// Halt stops the traversal for good, carrying v as the final payload.
// No further elements are visited; the source runs the same cleanup path it
// runs on normal exhaustion.
func Halt(v Erased) Acc { return Acc{value: v, tag: accHalt} }

// Suspend pauses the traversal, carrying v as the payload so far.
// The source captures its remaining iteration state and returns it as a
// [Result] continuation instead of visiting further elements.
func Suspend(v Erased) Acc { return Acc{value: v, tag: accSuspend} }

// IsContinue reports whether a directs the traversal to keep going.
func (a Acc) IsContinue() bool { return a.tag == accContinue }

// IsHalt reports whether a stops the traversal for good.
func (a Acc) IsHalt() bool { return a.tag == accHalt }

// IsSuspend reports whether a pauses the traversal resumably.
func (a Acc) IsSuspend() bool { return a.tag == accSuspend }

// Value returns the payload carried by the accumulator.
func (a Acc) Value() Erased { return a.value }

// Continuation resumes a paused reduction exactly where it stopped.
// It accepts a fresh accumulator, so the resumer chooses whether to keep
// going, halt, or suspend again.
//
// Continuations are one-shot by convention: sources are free to reuse
// mutable iteration state across calls, so invoking the same continuation
// twice observes whatever the first call left behind. [Suspension] wraps a
// continuation in an enforced one-shot handle.
type Continuation func(Acc) Result

// resultTag discriminates the three ways a reduction ends.
type resultTag uint8

const (
	resultDone resultTag = iota
	resultHalted
	resultSuspended
)

// Result is the tagged outcome of a [Enumerable.Reduce] call: the source
// ran out of elements (Done), the reducer stopped it (Halted), or the
// reducer paused it and the source handed back a continuation (Suspended).
type Result struct {
	value Erased
	cont  Continuation
	tag   resultTag
}

// Done wraps the final payload of a reduction that consumed every element.
func Done(v Erased) Result { return Result{value: v} }

// Halted wraps the final payload of a reduction stopped by [Halt].
func Halted(v Erased) Result { return Result{value: v, tag: resultHalted} }

// Suspended wraps the payload of a paused reduction together with the
// continuation that resumes it.
func Suspended(v Erased, k Continuation) Result {
	return Result{value: v, cont: k, tag: resultSuspended}
}

// IsDone reports whether the source ran out of elements.
func (r Result) IsDone() bool { return r.tag == resultDone }

// IsHalted reports whether the reducer stopped the traversal with [Halt].
func (r Result) IsHalted() bool { return r.tag == resultHalted }

// IsSuspended reports whether the traversal paused with [Suspend].
func (r Result) IsSuspended() bool { return r.tag == resultSuspended }

// Value returns the payload carried by the result.
func (r Result) Value() Erased { return r.value }

// Continuation returns the resumption handle of a suspended result and
// reports whether one is present. Only suspended results carry one.
func (r Result) Continuation() (Continuation, bool) {
	return r.cont, r.tag == resultSuspended
}

// terminal unwraps a result that must not be suspended.
//
// Operations that never return [Suspend] from their reducer cannot receive
// a suspended result from a law-abiding source; seeing one here means either
// the source fabricated a suspension or a caller-supplied tagged reducer
// suspended where only Continue and Halt are meaningful.
func terminal(r Result) Erased {
	if r.tag == resultSuspended {
		panic("enum: unexpected suspension")
	}
	return r.value
}
