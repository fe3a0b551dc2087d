package payout

// Summary is the computed payout position for one driver-month. TripsNeeded
// is meaningful only when Next is non-nil (it is then always >= 1).
type Summary struct {
	TotalTrips      int
	EstimatedPayout float64
	Current         *Slab
	Next            *Slab
	TripsNeeded     int
	ProgressPercent float64
}

// ComputePayout derives the payout summary for a monthly trip total. It never
// fails for numeric input: with an empty slab table the result is a zero
// payout with no target slab and 100% progress (nothing left to progress to).
func ComputePayout(totalTrips int, slabs []Slab) Summary {
	summary := Summary{
		TotalTrips:      totalTrips,
		ProgressPercent: 100,
	}

	if current, ok := MatchCurrentSlab(totalTrips, slabs); ok {
		summary.Current = &current
		summary.EstimatedPayout = current.Amount
	}

	if next, ok := MatchNextSlab(totalTrips, slabs); ok {
		summary.Next = &next
		summary.TripsNeeded = next.MinTrips - totalTrips
		summary.ProgressPercent = float64(totalTrips) / float64(next.MinTrips) * 100
	}

	return summary
}
