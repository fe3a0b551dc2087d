package converter

import (
	"fmt"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/payout"
)

// SlabsToCore maps persisted slab rows to the pure matcher's input.
func SlabsToCore(slabs []entity.PayoutSlab) []payout.Slab {
	out := make([]payout.Slab, 0, len(slabs))
	for _, s := range slabs {
		out = append(out, payout.Slab{
			MinTrips: s.MinTrips,
			MaxTrips: s.MaxTrips,
			Amount:   s.PayoutAmount,
		})
	}
	return out
}

func slabToResponse(s *payout.Slab) *model.SlabResponse {
	if s == nil {
		return nil
	}
	return &model.SlabResponse{
		MinTrips:     s.MinTrips,
		MaxTrips:     s.MaxTrips,
		PayoutAmount: s.Amount,
	}
}

// SummaryToResponse maps the computed summary to the JSON shape: absent
// current/next slabs and tripsNeeded serialize as null.
func SummaryToResponse(agg payout.MonthlyAggregate, summary payout.Summary) *model.PayoutSummaryResponse {
	resp := &model.PayoutSummaryResponse{
		DriverID:        agg.DriverID,
		Month:           agg.MonthKey,
		TotalTrips:      summary.TotalTrips,
		EstimatedPayout: summary.EstimatedPayout,
		CurrentSlab:     slabToResponse(summary.Current),
		NextSlab:        slabToResponse(summary.Next),
		ProgressPercent: summary.ProgressPercent,
		PerDay:          make(map[string]model.DayCountResponse, len(agg.PerDay)),
	}
	if summary.Next != nil {
		needed := summary.TripsNeeded
		resp.TripsNeeded = &needed
	}
	for day, count := range agg.PerDay {
		resp.PerDay[day] = model.DayCountResponse{
			Delivery: count.Delivery,
			Supply:   count.Supply,
			Other:    count.Other,
		}
	}
	return resp
}

// SlabDescription renders a slab for the insight prompt.
func SlabDescription(s *payout.Slab) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%d-%d trips => %.0f", s.MinTrips, s.MaxTrips, s.Amount)
}
