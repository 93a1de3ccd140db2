package shuffle

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat_RangeAndDeterminism(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := Float("seed", i)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
		assert.Equal(t, v, Float("seed", i))
	}
}

func TestSlice_Deterministic(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	seed := Seed(uuid.NewString(), "q1")

	first := Slice(in, seed)
	second := Slice(in, seed)
	assert.Equal(t, first, second)
}

func TestSlice_IsPermutation(t *testing.T) {
	in := make([]int, 50)
	for i := range in {
		in[i] = i
	}

	out := Slice(in, "attempt-1:q-7")
	require.Len(t, out, len(in))

	seen := map[int]int{}
	for _, v := range out {
		seen[v]++
	}
	for _, v := range in {
		assert.Equal(t, 1, seen[v], "element %d", v)
	}
}

func TestSlice_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	Slice(in, "s")
	assert.Equal(t, []string{"a", "b", "c", "d"}, in)
}

func TestSlice_DifferentSeedsDiffer(t *testing.T) {
	in := make([]int, 32)
	for i := range in {
		in[i] = i
	}

	differs := false
	base := Slice(in, "seed-0")
	for i := 1; i < 5 && !differs; i++ {
		next := Slice(in, fmt.Sprintf("seed-%d", i))
		for j := range base {
			if base[j] != next[j] {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "five seeds produced identical orders")
}

func TestSlice_SmallInputs(t *testing.T) {
	assert.Empty(t, Slice([]string(nil), "s"))
	assert.Equal(t, []string{"x"}, Slice([]string{"x"}, "s"))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, "at1:q1", Seed("at1", "q1"))
	assert.NotEqual(t, Seed("at1", "q1"), Seed("at1", "q2"))
}
