// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import "cmp"

// The extremum aggregates replace the champion only on strict inequality,
// so among equal keys the first-encountered element wins.

// Max returns the largest element, or [ErrEmpty] on an empty source.
func Max[T cmp.Ordered](e Enumerable[T]) (T, error) {
	return MaxBy(e, identity[T])
}

// MaxOr returns the largest element, or fallback() on an empty source.
func MaxOr[T cmp.Ordered](e Enumerable[T], fallback func() T) T {
	v, err := Max(e)
	if err != nil {
		return fallback()
	}
	return v
}

// MaxBy returns the element whose key is largest, or [ErrEmpty] on an
// empty source. key runs exactly once per element.
func MaxBy[T any, K cmp.Ordered](e Enumerable[T], key func(T) K) (T, error) {
	return champion(e, key, greater[K])
}

// Min returns the smallest element, or [ErrEmpty] on an empty source.
func Min[T cmp.Ordered](e Enumerable[T]) (T, error) {
	return MinBy(e, identity[T])
}

// MinOr returns the smallest element, or fallback() on an empty source.
func MinOr[T cmp.Ordered](e Enumerable[T], fallback func() T) T {
	v, err := Min(e)
	if err != nil {
		return fallback()
	}
	return v
}

// MinBy returns the element whose key is smallest, or [ErrEmpty] on an
// empty source. key runs exactly once per element.
func MinBy[T any, K cmp.Ordered](e Enumerable[T], key func(T) K) (T, error) {
	return champion(e, key, less[K])
}

// MinMax returns the smallest and largest element in one traversal, or
// [ErrEmpty] on an empty source.
func MinMax[T cmp.Ordered](e Enumerable[T]) (lo, hi T, err error) {
	return MinMaxBy(e, identity[T])
}

// MinMaxOr returns the smallest and largest element, or fallback() on an
// empty source.
func MinMaxOr[T cmp.Ordered](e Enumerable[T], fallback func() (T, T)) (lo, hi T) {
	lo, hi, err := MinMax(e)
	if err != nil {
		return fallback()
	}
	return lo, hi
}

// MinMaxBy returns the elements whose keys are smallest and largest in
// one traversal, or [ErrEmpty] on an empty source.
func MinMaxBy[T any, K cmp.Ordered](e Enumerable[T], key func(T) K) (lo, hi T, err error) {
	var loKey, hiKey K
	found := false
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		k := key(v)
		if !found {
			lo, hi = v, v
			loKey, hiKey = k, k
			found = true
			return Continue(nil)
		}
		if k < loKey {
			lo, loKey = v, k
		}
		if k > hiKey {
			hi, hiKey = v, k
		}
		return Continue(nil)
	}))
	if !found {
		return lo, hi, ErrEmpty
	}
	return lo, hi, nil
}

// champion folds to the element whose key beats all others under wins.
func champion[T any, K cmp.Ordered](e Enumerable[T], key func(T) K, wins func(cand, cur K) bool) (T, error) {
	var best T
	var bestKey K
	found := false
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		k := key(v)
		if !found || wins(k, bestKey) {
			best, bestKey = v, k
			found = true
		}
		return Continue(nil)
	}))
	if !found {
		return best, ErrEmpty
	}
	return best, nil
}

// Allocation note: named comparison functions are static funcvals, so the
// aggregates above pass them without allocating.
func greater[K cmp.Ordered](a, b K) bool { return a > b }

func less[K cmp.Ordered](a, b K) bool { return a < b }
