// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

// rangeSource adapts an arithmetic integer progression. All four cheap
// queries are answerable in constant time, which makes ranges the cheapest
// source to operate on.
type rangeSource struct {
	first, last, step int
}

// Range returns the inclusive progression first..last. The step is +1 when
// first <= last and -1 otherwise, so Range(3, 1) counts down.
func Range(first, last int) Enumerable[int] {
	step := 1
	if last < first {
		step = -1
	}
	return rangeSource{first: first, last: last, step: step}
}

// RangeStep returns the inclusive progression from first towards last
// advancing by step. The progression is empty when step points away from
// last. Panics if step is zero.
func RangeStep(first, last, step int) Enumerable[int] {
	if step == 0 {
		badArg("zero range step")
	}
	return rangeSource{first: first, last: last, step: step}
}

func (r rangeSource) size() int {
	span := r.last - r.first
	if (r.step > 0 && span < 0) || (r.step < 0 && span > 0) {
		return 0
	}
	return span/r.step + 1
}

func (r rangeSource) at(i int) int { return r.first + i*r.step }

func (r rangeSource) Reduce(acc Acc, fn Reducer[int]) Result {
	return r.reduceFrom(0, acc, fn)
}

func (r rangeSource) reduceFrom(idx int, acc Acc, fn Reducer[int]) Result {
	n := r.size()
	for {
		switch acc.tag {
		case accHalt:
			return Halted(acc.value)
		case accSuspend:
			at := idx
			return Suspended(acc.value, func(next Acc) Result {
				return r.reduceFrom(at, next, fn)
			})
		}
		if idx >= n {
			return Done(acc.value)
		}
		acc = fn(r.at(idx), acc.value)
		idx++
	}
}

// Count is closed-form arithmetic on the bounds.
func (r rangeSource) Count() (int, bool) { return r.size(), true }

// Contains is a bounds check plus a divisibility check, no traversal.
func (r rangeSource) Contains(v int) (bool, bool) {
	if r.size() == 0 {
		return false, true
	}
	if r.step > 0 {
		if v < r.first || v > r.last {
			return false, true
		}
	} else {
		if v > r.first || v < r.last {
			return false, true
		}
	}
	return (v-r.first)%r.step == 0, true
}

func (r rangeSource) Slice() (int, SliceFunc[int], bool) {
	return r.size(), r.slice, true
}

func (r rangeSource) slice(start, length int) []int {
	out := make([]int, length)
	for i := range out {
		out[i] = r.at(start + i)
	}
	return out
}
