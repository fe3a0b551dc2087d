package job

import (
	"testing"
	"time"

	"fleet-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusRequested, StatusAssigned, true},
		{StatusAssigned, StatusAccepted, true},
		{StatusAssigned, StatusInProgress, true},
		{StatusAccepted, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},

		{StatusRequested, StatusInProgress, false},
		{StatusRequested, StatusCompleted, false},
		{StatusAssigned, StatusCompleted, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusInProgress, StatusAssigned, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func event(stop, action string) entity.JobEvent {
	return entity.JobEvent{StopName: stop, Action: action, OccurredAt: time.Now()}
}

// one source and two destinations: completion needs 3 stops x 2 actions.
func tankerStops() []string {
	return []string{"Borewell Station", "Green Villa", "Sunrise Apartments"}
}

func fiveOfSixEvents() []entity.JobEvent {
	return []entity.JobEvent{
		event("Borewell Station", ActionArrived),
		event("Borewell Station", ActionFulfilled),
		event("Green Villa", ActionArrived),
		event("Green Villa", ActionFulfilled),
		event("Sunrise Apartments", ActionArrived),
		// fulfillment at the last destination still missing
	}
}

func TestFinalStop(t *testing.T) {
	last, ok := FinalStop(tankerStops())
	assert.True(t, ok)
	assert.Equal(t, "Sunrise Apartments", last)

	_, ok = FinalStop(nil)
	assert.False(t, ok)
	_, ok = FinalStop([]string{})
	assert.False(t, ok)
}

func TestAllStopsCompleteRequiresEveryConfirmation(t *testing.T) {
	events := fiveOfSixEvents()
	stops := tankerStops()

	assert.False(t, AllStopsComplete(events, stops))
	assert.Equal(t, []string{"Sunrise Apartments"}, IncompleteStops(events, stops))

	events = append(events, event("Sunrise Apartments", ActionFulfilled))
	assert.True(t, AllStopsComplete(events, stops))
	assert.Nil(t, IncompleteStops(events, stops))
}

func TestStopCompleteNeedsBothActions(t *testing.T) {
	events := []entity.JobEvent{event("Borewell Station", ActionArrived)}
	assert.False(t, StopComplete(events, "Borewell Station"))

	events = append(events, event("Borewell Station", ActionFulfilled))
	assert.True(t, StopComplete(events, "Borewell Station"))

	// notes never count toward completion
	noteOnly := []entity.JobEvent{
		event("Green Villa", ActionNote),
		event("Green Villa", ActionNote),
	}
	assert.False(t, StopComplete(noteOnly, "Green Villa"))
}

func TestHasStopActionDetectsDuplicates(t *testing.T) {
	events := []entity.JobEvent{event("Green Villa", ActionArrived)}
	assert.True(t, HasStopAction(events, "Green Villa", ActionArrived))
	assert.False(t, HasStopAction(events, "Green Villa", ActionFulfilled))
	assert.False(t, HasStopAction(events, "Sunrise Apartments", ActionArrived))
}

func TestFulfillLabel(t *testing.T) {
	assert.Equal(t, "Water Filled", FulfillLabel(entity.StopKindSource))
	assert.Equal(t, "Water Delivered", FulfillLabel(entity.StopKindDestination))
}

func TestValidAction(t *testing.T) {
	assert.True(t, ValidAction(ActionArrived))
	assert.True(t, ValidAction(ActionFulfilled))
	assert.True(t, ValidAction(ActionNote))
	assert.False(t, ValidAction("Water Filled"))
	assert.False(t, ValidAction(""))
}

func TestBuildTripFromJob(t *testing.T) {
	assignedAt := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local)
	j := entity.Job{
		JobID:      "job-1",
		OwnerID:    "owner-1",
		DriverID:   "driver-1",
		RouteID:    "route-1",
		RouteName:  "North Loop",
		Status:     StatusCompleted,
		AssignedAt: assignedAt,
	}
	events := fiveOfSixEvents()

	trip := BuildTripFromJob(j, events)

	assert.Equal(t, 1, trip.Count)
	assert.Equal(t, assignedAt, trip.TripDate, "trip must be dated by assignment, not completion")
	require.NotNil(t, trip.JobID)
	assert.Equal(t, "job-1", *trip.JobID)
	assert.Equal(t, "owner-1", trip.OwnerID)
	assert.Equal(t, "driver-1", trip.DriverID)
	assert.Len(t, trip.Events, len(events))
	assert.NotEmpty(t, trip.TripID)
}

func TestBuildManualTrip(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	trip := BuildManualTrip("owner-1", "driver-1", "route-1", "", 3, date)

	assert.Nil(t, trip.JobID)
	assert.Equal(t, 3, trip.Count)
	assert.Equal(t, date, trip.TripDate)
	assert.Equal(t, "delivery", trip.TripType)
}
