package payout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePayoutMidSlab(t *testing.T) {
	got := ComputePayout(100, standardSlabs())

	require.NotNil(t, got.Current)
	assert.Equal(t, Slab{MinTrips: 100, MaxTrips: 149, Amount: 100000}, *got.Current)
	assert.Equal(t, float64(100000), got.EstimatedPayout)

	require.NotNil(t, got.Next)
	assert.Equal(t, Slab{MinTrips: 150, MaxTrips: 9999, Amount: 150000}, *got.Next)
	assert.Equal(t, 50, got.TripsNeeded)
	assert.InDelta(t, 100.0/150.0*100, got.ProgressPercent, 1e-9)
}

func TestComputePayoutTopSlab(t *testing.T) {
	got := ComputePayout(160, standardSlabs())

	require.NotNil(t, got.Current)
	assert.Equal(t, 150, got.Current.MinTrips)
	assert.Equal(t, float64(150000), got.EstimatedPayout)
	assert.Nil(t, got.Next)
	assert.Equal(t, float64(100), got.ProgressPercent)
}

func TestComputePayoutZeroTrips(t *testing.T) {
	got := ComputePayout(0, standardSlabs())

	require.NotNil(t, got.Current)
	assert.Equal(t, 0, got.Current.MinTrips)
	assert.Equal(t, float64(0), got.EstimatedPayout)

	require.NotNil(t, got.Next)
	assert.Equal(t, 50, got.Next.MinTrips)
	assert.Equal(t, 50, got.TripsNeeded)
}

func TestComputePayoutEmptySlabTable(t *testing.T) {
	got := ComputePayout(42, nil)

	assert.Equal(t, float64(0), got.EstimatedPayout)
	assert.Nil(t, got.Current)
	assert.Nil(t, got.Next)
	assert.Equal(t, float64(100), got.ProgressPercent)
}

func TestTripsNeededPositiveWheneverNextSet(t *testing.T) {
	for trips := 0; trips <= 200; trips++ {
		got := ComputePayout(trips, standardSlabs())
		if got.Next != nil {
			assert.Greater(t, got.TripsNeeded, 0, "tripsNeeded must be positive at %d", trips)
		}
	}
}
