package converter

import (
	"encoding/json"
	"testing"

	"fleet-service/src/internal/payout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryToResponseNoneValues(t *testing.T) {
	agg := payout.MonthlyAggregate{DriverID: "driver-1", MonthKey: "2026-03"}
	summary := payout.ComputePayout(0, nil)

	resp := SummaryToResponse(agg, summary)

	assert.Nil(t, resp.CurrentSlab)
	assert.Nil(t, resp.NextSlab)
	assert.Nil(t, resp.TripsNeeded)
	assert.Equal(t, float64(100), resp.ProgressPercent)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"currentSlab":null`)
	assert.Contains(t, string(raw), `"nextSlab":null`)
	assert.Contains(t, string(raw), `"tripsNeeded":null`)
}

func TestSummaryToResponseWithNext(t *testing.T) {
	slabs := []payout.Slab{
		{MinTrips: 0, MaxTrips: 49, Amount: 0},
		{MinTrips: 50, MaxTrips: 99, Amount: 50000},
	}
	agg := payout.MonthlyAggregate{DriverID: "driver-1", MonthKey: "2026-03", TotalTrips: 20}
	summary := payout.ComputePayout(20, slabs)

	resp := SummaryToResponse(agg, summary)

	require.NotNil(t, resp.TripsNeeded)
	assert.Equal(t, 30, *resp.TripsNeeded)
	require.NotNil(t, resp.NextSlab)
	assert.Equal(t, 50, resp.NextSlab.MinTrips)
}

func TestSlabDescription(t *testing.T) {
	assert.Equal(t, "none", SlabDescription(nil))
	assert.Equal(t, "50-99 trips => 50000",
		SlabDescription(&payout.Slab{MinTrips: 50, MaxTrips: 99, Amount: 50000}))
}
