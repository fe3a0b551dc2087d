package payout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

func sampleEntries() []TripEntry {
	return []TripEntry{
		{TripType: TripTypeDelivery, Count: 2, Date: day(2026, time.March, 3)},
		{TripType: TripTypeSupply, Count: 1, Date: day(2026, time.March, 3)},
		{TripType: TripTypeDelivery, Count: 1, Date: day(2026, time.March, 15)},
		{TripType: "adhoc-wash", Count: 1, Date: day(2026, time.March, 15)},
		// outside the month, must be filtered
		{TripType: TripTypeDelivery, Count: 5, Date: day(2026, time.February, 28)},
		{TripType: TripTypeDelivery, Count: 4, Date: day(2026, time.April, 1)},
	}
}

func TestAggregateMonthFiltersAndSums(t *testing.T) {
	agg, err := AggregateMonth("driver-1", sampleEntries(), "2026-03")
	require.NoError(t, err)

	assert.Equal(t, "driver-1", agg.DriverID)
	assert.Equal(t, "2026-03", agg.MonthKey)
	assert.Equal(t, 5, agg.TotalTrips)
	assert.Len(t, agg.PerDay, 2)

	assert.Equal(t, DayCount{Delivery: 2, Supply: 1}, agg.PerDay["2026-03-03"])
	assert.Equal(t, DayCount{Delivery: 1, Other: 1}, agg.PerDay["2026-03-15"])
}

func TestAggregateMonthKeepsUnknownTypes(t *testing.T) {
	entries := []TripEntry{
		{TripType: "something-new", Count: 3, Date: day(2026, time.March, 9)},
	}
	agg, err := AggregateMonth("driver-1", entries, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 3, agg.TotalTrips)
	assert.Equal(t, 3, agg.PerDay["2026-03-09"].Other)
}

func TestAggregateMonthIdempotent(t *testing.T) {
	first, err := AggregateMonth("driver-1", sampleEntries(), "2026-03")
	require.NoError(t, err)
	second, err := AggregateMonth("driver-1", sampleEntries(), "2026-03")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregateMonthEmpty(t *testing.T) {
	agg, err := AggregateMonth("driver-1", nil, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 0, agg.TotalTrips)
	assert.Empty(t, agg.PerDay)
}

func TestAggregateMonthRejectsBadKey(t *testing.T) {
	_, err := AggregateMonth("driver-1", nil, "March 2026")
	assert.Error(t, err)
}
