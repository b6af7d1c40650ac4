// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/enum"
)

// trackedSeq yields 1..n and reports whether the iterator observed its own
// termination, which [iter.Pull]'s stop guarantees on every finished pass.
func trackedSeq(n int, finished *bool) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		defer func() { *finished = true }()
		for i := 1; i <= n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestFromSeqToSlice(t *testing.T) {
	var finished bool
	got := enum.ToSlice(enum.FromSeq(trackedSeq(4, &finished)))
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.True(t, finished, "exhaustion must stop the pull iterator")
}

func TestFromSeqHaltStopsIterator(t *testing.T) {
	var finished bool
	got := enum.Take(enum.FromSeq(trackedSeq(1000, &finished)), 3)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.True(t, finished, "halting must stop the pull iterator")
}

func TestFromSeqFreshPassPerReduce(t *testing.T) {
	var finished bool
	e := enum.FromSeq(trackedSeq(3, &finished))
	assert.Equal(t, []int{1, 2, 3}, enum.ToSlice(e))
	assert.Equal(t, []int{1, 2, 3}, enum.ToSlice(e))
}

func TestFromSeqDiscardStopsIterator(t *testing.T) {
	var finished bool
	susp := enum.Step(enum.FromSeq(trackedSeq(1000, &finished)))
	assert.Equal(t, 1, susp.Value())
	susp = susp.Resume()
	assert.Equal(t, 2, susp.Value())
	assert.False(t, finished, "iterator must stay live across suspensions")

	susp.Discard()
	assert.True(t, finished, "discard must stop the pull iterator")
}

func TestValuesBridgesOutbound(t *testing.T) {
	var got []int
	for v := range enum.Values(enum.Range(1, 4)) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestValuesEarlyBreakHalts(t *testing.T) {
	var finished bool
	var got []int
	for v := range enum.Values(enum.FromSeq(trackedSeq(1000, &finished))) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.True(t, finished, "breaking the range loop must halt the source")
}

func TestSeqRoundTrip(t *testing.T) {
	orig := []string{"a", "b", "c"}
	got := enum.ToSlice(enum.FromSeq(enum.Values(enum.FromSlice(orig))))
	assert.Equal(t, orig, got)
}
