// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import "errors"

// Sentinel errors returned by operations whose failure is an ordinary
// domain condition rather than a caller bug. Compare with [errors.Is].
var (
	// ErrEmpty reports an aggregate applied to a source with no elements
	// and no fallback to produce a value from.
	ErrEmpty = errors.New("enum: empty source")

	// ErrOutOfBounds reports a positional access that resolved outside
	// the source, after negative-index normalization.
	ErrOutOfBounds = errors.New("enum: index out of bounds")
)

// badArg reports a caller contract violation, such as a negative count
// where only natural numbers are meaningful. Extracted so that the callers
// performing the check stay inlineable.
//
//go:noinline
func badArg(msg string) {
	panic("enum: " + msg)
}
