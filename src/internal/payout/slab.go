package payout

import "sort"

// Slab maps a monthly trip-count range to a fixed payout amount. Slabs are
// owner-configured and are expected to be contiguous and non-overlapping, but
// the matcher never relies on that: overlaps resolve to the lowest MinTrips.
type Slab struct {
	MinTrips int
	MaxTrips int
	Amount   float64
}

func sortedByMin(slabs []Slab) []Slab {
	out := make([]Slab, len(slabs))
	copy(out, slabs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].MinTrips < out[j].MinTrips
	})
	return out
}

// MatchCurrentSlab returns the slab whose range contains totalTrips. Input
// order does not matter. ok is false when totalTrips falls below every slab
// or inside a configuration gap.
func MatchCurrentSlab(totalTrips int, slabs []Slab) (Slab, bool) {
	for _, s := range sortedByMin(slabs) {
		if totalTrips >= s.MinTrips && totalTrips <= s.MaxTrips {
			return s, true
		}
	}
	return Slab{}, false
}

// MatchNextSlab returns the slab with the smallest MinTrips strictly greater
// than totalTrips. ok is false when the driver already meets or exceeds every
// slab's threshold.
func MatchNextSlab(totalTrips int, slabs []Slab) (Slab, bool) {
	for _, s := range sortedByMin(slabs) {
		if s.MinTrips > totalTrips {
			return s, true
		}
	}
	return Slab{}, false
}
