// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// kvSource adapts an unordered key/value collection. Elements are emitted
// as [Pair] values, key first.
type kvSource[K, V comparable] struct {
	entries map[K]V
}

// FromMap wraps m as an [Enumerable] of key/value pairs.
//
// Emission order is arbitrary, but each entry is visited exactly once per
// traversal: a traversal snapshots the entries up front, so a suspension
// resumed later still sees the remaining entries of its own snapshot.
func FromMap[K, V comparable](m map[K]V) Enumerable[Pair[K, V]] {
	return kvSource[K, V]{entries: m}
}

func (s kvSource[K, V]) Reduce(acc Acc, fn Reducer[Pair[K, V]]) Result {
	return ReduceSlice(s.pairs(), acc, fn)
}

func (s kvSource[K, V]) pairs() []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(s.entries))
	for k, v := range s.entries {
		out = append(out, Pair[K, V]{Fst: k, Snd: v})
	}
	return out
}

// Count is the map size, tracked structurally by the runtime.
func (s kvSource[K, V]) Count() (int, bool) { return len(s.entries), true }

// Contains is a key lookup plus a value comparison, cheap for any map.
func (s kvSource[K, V]) Contains(p Pair[K, V]) (bool, bool) {
	v, ok := s.entries[p.Fst]
	return ok && v == p.Snd, true
}

// Slice snapshots the entries once; the returned accessor indexes into
// that snapshot, so one positional pass observes one consistent order.
func (s kvSource[K, V]) Slice() (int, SliceFunc[Pair[K, V]], bool) {
	snapshot := s.pairs()
	return len(snapshot), func(start, length int) []Pair[K, V] {
		out := make([]Pair[K, V], length)
		copy(out, snapshot[start:start+length])
		return out
	}, true
}
