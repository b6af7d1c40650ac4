// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// GroupBy buckets the elements under key(elem). Within each bucket the
// elements keep their encounter order.
func GroupBy[T any, K comparable](e Enumerable[T], key func(T) K) map[K][]T {
	return GroupByWith(e, key, identity[T])
}

// GroupByWith buckets value(elem) under key(elem), preserving encounter
// order within each bucket.
func GroupByWith[T any, K comparable, V any](e Enumerable[T], key func(T) K, value func(T) V) map[K][]V {
	out := make(map[K][]V)
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		k := key(v)
		out[k] = append(out[k], value(v))
		return Continue(nil)
	}))
	return out
}

// Frequencies counts how many times each element occurs.
func Frequencies[T comparable](e Enumerable[T]) map[T]int {
	return FrequenciesBy(e, identity[T])
}

// FrequenciesBy counts occurrences bucketed under key(elem).
func FrequenciesBy[T any, K comparable](e Enumerable[T], key func(T) K) map[K]int {
	out := make(map[K]int)
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		out[key(v)]++
		return Continue(nil)
	}))
	return out
}
