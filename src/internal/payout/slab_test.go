package payout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardSlabs() []Slab {
	return []Slab{
		{MinTrips: 0, MaxTrips: 49, Amount: 0},
		{MinTrips: 50, MaxTrips: 99, Amount: 50000},
		{MinTrips: 100, MaxTrips: 149, Amount: 100000},
		{MinTrips: 150, MaxTrips: 9999, Amount: 150000},
	}
}

func shuffledSlabs() []Slab {
	return []Slab{
		{MinTrips: 150, MaxTrips: 9999, Amount: 150000},
		{MinTrips: 0, MaxTrips: 49, Amount: 0},
		{MinTrips: 100, MaxTrips: 149, Amount: 100000},
		{MinTrips: 50, MaxTrips: 99, Amount: 50000},
	}
}

func TestMatchCurrentSlab(t *testing.T) {
	tests := []struct {
		name       string
		totalTrips int
		wantMin    int
		wantOK     bool
	}{
		{"zero trips lands in first slab", 0, 0, true},
		{"boundary low", 50, 50, true},
		{"mid range", 100, 100, true},
		{"boundary high", 149, 100, true},
		{"top slab", 160, 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchCurrentSlab(tt.totalTrips, standardSlabs())
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMin, got.MinTrips)
		})
	}
}

func TestMatchCurrentSlabNoMatch(t *testing.T) {
	_, ok := MatchCurrentSlab(10, nil)
	assert.False(t, ok)

	// below every configured range
	slabs := []Slab{{MinTrips: 50, MaxTrips: 99, Amount: 50000}}
	_, ok = MatchCurrentSlab(10, slabs)
	assert.False(t, ok)

	// configuration gap between slabs
	gappy := []Slab{
		{MinTrips: 0, MaxTrips: 49, Amount: 0},
		{MinTrips: 100, MaxTrips: 149, Amount: 100000},
	}
	_, ok = MatchCurrentSlab(75, gappy)
	assert.False(t, ok)
}

func TestMatchCurrentSlabOverlapLowestWins(t *testing.T) {
	overlapping := []Slab{
		{MinTrips: 40, MaxTrips: 120, Amount: 70000},
		{MinTrips: 0, MaxTrips: 60, Amount: 10000},
	}
	got, ok := MatchCurrentSlab(50, overlapping)
	require.True(t, ok)
	assert.Equal(t, 0, got.MinTrips)
}

func TestMatchNextSlab(t *testing.T) {
	next, ok := MatchNextSlab(100, standardSlabs())
	require.True(t, ok)
	assert.Equal(t, 150, next.MinTrips)

	next, ok = MatchNextSlab(0, standardSlabs())
	require.True(t, ok)
	assert.Equal(t, 50, next.MinTrips)

	// at or above every threshold
	_, ok = MatchNextSlab(160, standardSlabs())
	assert.False(t, ok)

	_, ok = MatchNextSlab(150, standardSlabs())
	assert.False(t, ok)

	_, ok = MatchNextSlab(5, nil)
	assert.False(t, ok)
}

func TestMatchersAreSortInvariant(t *testing.T) {
	for trips := 0; trips <= 200; trips += 7 {
		sortedCur, sortedOK := MatchCurrentSlab(trips, standardSlabs())
		shuffledCur, shuffledOK := MatchCurrentSlab(trips, shuffledSlabs())
		assert.Equal(t, sortedOK, shuffledOK, "current ok mismatch at %d", trips)
		assert.Equal(t, sortedCur, shuffledCur, "current slab mismatch at %d", trips)

		sortedNext, sortedNextOK := MatchNextSlab(trips, standardSlabs())
		shuffledNext, shuffledNextOK := MatchNextSlab(trips, shuffledSlabs())
		assert.Equal(t, sortedNextOK, shuffledNextOK, "next ok mismatch at %d", trips)
		assert.Equal(t, sortedNext, shuffledNext, "next slab mismatch at %d", trips)
	}
}

func TestMatchersDoNotMutateInput(t *testing.T) {
	slabs := shuffledSlabs()
	MatchCurrentSlab(75, slabs)
	MatchNextSlab(75, slabs)
	assert.Equal(t, shuffledSlabs(), slabs)
}
