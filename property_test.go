// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/enum"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randSlice returns a random int slice of length [0, 32].
func randSlice(rng *rand.Rand) []int {
	s := make([]int, rng.IntN(33))
	for i := range s {
		s[i] = randInt(rng)
	}
	return s
}

// randDenseSlice returns a slice of length [0, 24] over the narrow value
// range [0, 8), so duplicates and ties are common.
func randDenseSlice(rng *rand.Rand) []int {
	s := make([]int, rng.IntN(25))
	for i := range s {
		s[i] = rng.IntN(8)
	}
	return s
}

// tagged carries a sort key and its arrival position, for stability checks.
type tagged struct {
	key, seq int
}

// --- Group 1: Source Round-Trips ---

// TestPropertyToSliceRoundTrip: ToSlice(FromSlice(s)) ≡ s
func TestPropertyToSliceRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		got := enum.ToSlice(enum.FromSlice(s))
		if !slices.Equal(got, s) {
			t.Fatalf("round trip: %v != %v", got, s)
		}
	}
}

// TestPropertySeqRoundTrip: ToSlice(FromSeq(Values(e))) ≡ ToSlice(e)
func TestPropertySeqRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		got := enum.ToSlice(enum.FromSeq(enum.Values(enum.FromSlice(s))))
		if !slices.Equal(got, s) {
			t.Fatalf("seq round trip: %v != %v", got, s)
		}
	}
}

// TestPropertyStepWalkMatchesToSlice: collecting via Step/Resume ≡ ToSlice
func TestPropertyStepWalkMatchesToSlice(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		var got []int
		for susp := enum.Step(enum.FromSlice(s)); susp != nil; susp = susp.Resume() {
			got = append(got, susp.Value())
		}
		if !slices.Equal(got, s) {
			t.Fatalf("step walk: %v != %v", got, s)
		}
	}
}

// --- Group 2: Range Arithmetic ---

// TestPropertyRangeCountMatchesTraversal: closed-form Count ≡ len(ToSlice)
func TestPropertyRangeCountMatchesTraversal(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		first, last := randInt(rng), randInt(rng)
		step := rng.IntN(9) + 1
		if rng.IntN(2) == 1 {
			step = -step
		}
		e := enum.RangeStep(first, last, step)
		if got, want := enum.Count(e), len(enum.ToSlice(e)); got != want {
			t.Fatalf("range count: %d != %d (%d..%d by %d)", got, want, first, last, step)
		}
	}
}

// TestPropertyRangeContainsMatchesScan: arithmetic Contains ≡ linear scan
func TestPropertyRangeContainsMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		first, last := randInt(rng), randInt(rng)
		step := rng.IntN(9) + 1
		if rng.IntN(2) == 1 {
			step = -step
		}
		v := randInt(rng)
		e := enum.RangeStep(first, last, step)
		if got, want := enum.Contains(e, v), slices.Contains(enum.ToSlice(e), v); got != want {
			t.Fatalf("range contains %d: %v != %v (%d..%d by %d)", v, got, want, first, last, step)
		}
	}
}

// --- Group 3: Reverse ---

// TestPropertyReverseInvolution: Reverse(Reverse(s)) ≡ s
func TestPropertyReverseInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		got := enum.Reverse(enum.FromSlice(enum.Reverse(enum.FromSlice(s))))
		if !slices.Equal(got, s) {
			t.Fatalf("reverse involution: %v != %v", got, s)
		}
	}
}

// TestPropertyReverseMatchesStdlib: Reverse ≡ slices.Reverse
func TestPropertyReverseMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		want := slices.Clone(s)
		slices.Reverse(want)
		if got := enum.Reverse(enum.FromSlice(s)); !slices.Equal(got, want) {
			t.Fatalf("reverse: %v != %v", got, want)
		}
	}
}

// --- Group 4: Sort ---

// TestPropertySortMatchesStdlib: Sort ≡ slices.Sort
func TestPropertySortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		want := slices.Clone(s)
		slices.Sort(want)
		if got := enum.Sort(enum.FromSlice(s)); !slices.Equal(got, want) {
			t.Fatalf("sort: %v != %v (input %v)", got, want, s)
		}
	}
}

// TestPropertySortIdempotent: Sort(Sort(s)) ≡ Sort(s)
func TestPropertySortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randDenseSlice(rng)
		once := enum.Sort(enum.FromSlice(s))
		twice := enum.Sort(enum.FromSlice(once))
		if !slices.Equal(twice, once) {
			t.Fatalf("sort idempotence: %v != %v", twice, once)
		}
	}
}

// TestPropertySortStability: SortWith on keyed pairs ≡ slices.SortStableFunc
func TestPropertySortStability(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		ts := make([]tagged, rng.IntN(25))
		for i := range ts {
			ts[i] = tagged{key: rng.IntN(8), seq: i}
		}
		got := enum.SortWith(enum.FromSlice(ts), func(a, b tagged) bool { return a.key <= b.key })
		want := slices.Clone(ts)
		slices.SortStableFunc(want, func(a, b tagged) int { return cmp.Compare(a.key, b.key) })
		if !slices.Equal(got, want) {
			t.Fatalf("sort stability: %v != %v (input %v)", got, want, ts)
		}
	}
}

// --- Group 5: Predicate Duality ---

// TestPropertyAllAnyDuality: All(p) ≡ !Any(!p)
func TestPropertyAllAnyDuality(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		k := rng.IntN(7) + 1
		p := func(v int) bool { return v%k == 0 }
		all := enum.All(enum.FromSlice(s), p)
		anyNot := enum.Any(enum.FromSlice(s), func(v int) bool { return !p(v) })
		if all == anyNot {
			t.Fatalf("duality: All=%v Any(!p)=%v (k=%d, %v)", all, anyNot, k, s)
		}
	}
}

// TestPropertyCountByPartition: CountBy(p) + CountBy(!p) ≡ Count
func TestPropertyCountByPartition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		k := rng.IntN(7) + 1
		p := func(v int) bool { return v%k == 0 }
		hit := enum.CountBy(enum.FromSlice(s), p)
		miss := enum.CountBy(enum.FromSlice(s), func(v int) bool { return !p(v) })
		if hit+miss != len(s) {
			t.Fatalf("partition: %d + %d != %d (k=%d)", hit, miss, len(s), k)
		}
	}
}

// --- Group 6: Positional Partition ---

// TestPropertyTakeDropPartition: Take(n) ++ Drop(n) ≡ s for n >= 0
func TestPropertyTakeDropPartition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		n := rng.IntN(len(s) + 5)
		got := append(enum.Take(enum.FromSlice(s), n), enum.Drop(enum.FromSlice(s), n)...)
		if !slices.Equal(got, s) {
			t.Fatalf("take/drop partition: %v != %v (n=%d)", got, s, n)
		}
	}
}

// TestPropertyNegativeTakeIsSuffix: Take(-n) ≡ s[len-min(n,len):]
func TestPropertyNegativeTakeIsSuffix(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		n := rng.IntN(len(s) + 5)
		got := enum.Take(enum.FromSlice(s), -n)
		want := s[len(s)-min(n, len(s)):]
		if !slices.Equal(got, want) {
			t.Fatalf("negative take: %v != %v (n=%d, %v)", got, want, n, s)
		}
	}
}

// TestPropertyNegativeDropIsPrefix: Drop(-n) ≡ s[:len-min(n,len)]
func TestPropertyNegativeDropIsPrefix(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		n := rng.IntN(len(s) + 5)
		got := enum.Drop(enum.FromSlice(s), -n)
		want := s[:len(s)-min(n, len(s))]
		if !slices.Equal(got, want) {
			t.Fatalf("negative drop: %v != %v (n=%d, %v)", got, want, n, s)
		}
	}
}

// TestPropertySplitAgreesWithTakeDrop: Split(n) ≡ (Take(n), Drop(n)) for n >= 0
func TestPropertySplitAgreesWithTakeDrop(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		n := rng.IntN(len(s) + 5)
		head, tail := enum.Split(enum.FromSlice(s), n)
		if !slices.Equal(head, enum.Take(enum.FromSlice(s), n)) {
			t.Fatalf("split head: %v (n=%d, %v)", head, n, s)
		}
		if !slices.Equal(tail, enum.Drop(enum.FromSlice(s), n)) {
			t.Fatalf("split tail: %v (n=%d, %v)", tail, n, s)
		}
	}
}

// --- Group 7: Uniq and Dedup ---

// TestPropertyUniqIdempotent: Uniq(Uniq(s)) ≡ Uniq(s)
func TestPropertyUniqIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randDenseSlice(rng)
		once := enum.Uniq(enum.FromSlice(s))
		twice := enum.Uniq(enum.FromSlice(once))
		if !slices.Equal(twice, once) {
			t.Fatalf("uniq idempotence: %v != %v", twice, once)
		}
	}
}

// TestPropertyDedupEqualsUniqOnSorted: Dedup(sorted) ≡ Uniq(sorted)
func TestPropertyDedupEqualsUniqOnSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		sorted := enum.Sort(enum.FromSlice(randDenseSlice(rng)))
		deduped := enum.Dedup(enum.FromSlice(sorted))
		uniqed := enum.Uniq(enum.FromSlice(sorted))
		if !slices.Equal(deduped, uniqed) {
			t.Fatalf("dedup on sorted: %v != %v (input %v)", deduped, uniqed, sorted)
		}
	}
}

// --- Group 8: Zip ---

// TestPropertyZipLength: len(Zip(a, b)) ≡ min(len(a), len(b))
func TestPropertyZipLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randSlice(rng), randSlice(rng)
		pairs := enum.Zip(enum.FromSlice(a), enum.FromSlice(b))
		if len(pairs) != min(len(a), len(b)) {
			t.Fatalf("zip length: %d != min(%d, %d)", len(pairs), len(a), len(b))
		}
		for i, p := range pairs {
			if p.Fst != a[i] || p.Snd != b[i] {
				t.Fatalf("zip pair %d: {%d %d} != {%d %d}", i, p.Fst, p.Snd, a[i], b[i])
			}
		}
	}
}

// TestPropertyZipUnzipRoundTrip: Unzip(Zip(a, b)) ≡ (a, b) truncated to min length
func TestPropertyZipUnzipRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randSlice(rng), randSlice(rng)
		n := min(len(a), len(b))
		as, bs := enum.Unzip(enum.FromSlice(enum.Zip(enum.FromSlice(a), enum.FromSlice(b))))
		if !slices.Equal(as, a[:n]) || !slices.Equal(bs, b[:n]) {
			t.Fatalf("zip/unzip: (%v, %v) != (%v, %v)", as, bs, a[:n], b[:n])
		}
	}
}

// --- Group 9: Shuffle ---

// TestPropertyShuffleIsPermutation: Sort(Shuffle(s)) ≡ Sort(s)
func TestPropertyShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		shuffled := enum.Shuffle(enum.FromSlice(s), rng)
		got := enum.Sort(enum.FromSlice(shuffled))
		want := enum.Sort(enum.FromSlice(s))
		if !slices.Equal(got, want) {
			t.Fatalf("shuffle permutation: %v != %v", got, want)
		}
	}
}

// --- Group 10: Chunking ---

// TestPropertyChunkEveryConcatIdentity: concat(ChunkEvery(s, n)) ≡ s
func TestPropertyChunkEveryConcatIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		n := rng.IntN(8) + 1
		chunks := enum.ChunkEvery(enum.FromSlice(s), n)
		var got []int
		for i, c := range chunks {
			if len(c) == 0 || len(c) > n {
				t.Fatalf("chunk %d has bad length %d (n=%d)", i, len(c), n)
			}
			if i < len(chunks)-1 && len(c) != n {
				t.Fatalf("non-final chunk %d has length %d, want %d", i, len(c), n)
			}
			got = append(got, c...)
		}
		if !slices.Equal(got, s) {
			t.Fatalf("chunk concat: %v != %v (n=%d)", got, s, n)
		}
	}
}

// --- Group 11: Join ---

// TestPropertyJoinMatchesStringsJoin: Join(words, sep) ≡ strings.Join(words, sep)
func TestPropertyJoinMatchesStringsJoin(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		words := make([]string, rng.IntN(6))
		for i := range words {
			words[i] = randString(rng)
		}
		sep := randString(rng)
		got := enum.Join(enum.FromSlice(words), sep)
		if want := strings.Join(words, sep); got != want {
			t.Fatalf("join: %q != %q (sep %q)", got, want, sep)
		}
	}
}
