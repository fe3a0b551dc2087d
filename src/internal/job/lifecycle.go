package job

import (
	"fleet-service/src/internal/entity"
)

// Job statuses. ACCEPTED is a modeled intermediate but not required: a job
// moves to IN_PROGRESS the first time the assigned driver acts on it.
const (
	StatusRequested  = "REQUESTED"
	StatusAssigned   = "ASSIGNED"
	StatusAccepted   = "ACCEPTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// Closed set of timeline action kinds. Stop completion is decided on these,
// never on the free-text label.
const (
	ActionArrived   = "ARRIVED"
	ActionFulfilled = "FULFILLED"
	ActionNote      = "NOTE"
)

var transitions = map[string][]string{
	StatusRequested:  {StatusAssigned},
	StatusAssigned:   {StatusAccepted, StatusInProgress},
	StatusAccepted:   {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
}

// CanTransition reports whether from -> to is a legal status move.
// COMPLETED is terminal.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidAction reports whether kind belongs to the closed action set.
func ValidAction(kind string) bool {
	return kind == ActionArrived || kind == ActionFulfilled || kind == ActionNote
}

// FulfillLabel is the display text for a stop's fulfillment confirmation:
// the tanker is filled at the source and emptied at each destination.
func FulfillLabel(stopKind string) string {
	if stopKind == entity.StopKindSource {
		return "Water Filled"
	}
	return "Water Delivered"
}

// ArriveLabel is the display text for a stop arrival confirmation.
func ArriveLabel(stopName string) string {
	return "Arrived at " + stopName
}

// HasStopAction reports whether the timeline already carries the given action
// at the given stop. Re-submitting such an action is a no-op.
func HasStopAction(events []entity.JobEvent, stopName, action string) bool {
	for _, e := range events {
		if e.StopName == stopName && e.Action == action {
			return true
		}
	}
	return false
}

// StopComplete reports whether a stop has both required confirmations logged:
// an arrival and a fulfillment.
func StopComplete(events []entity.JobEvent, stopName string) bool {
	return HasStopAction(events, stopName, ActionArrived) &&
		HasStopAction(events, stopName, ActionFulfilled)
}

// AllStopsComplete is the completion precondition: every stop on the route,
// source and destinations alike, must be complete.
func AllStopsComplete(events []entity.JobEvent, stopNames []string) bool {
	for _, name := range stopNames {
		if !StopComplete(events, name) {
			return false
		}
	}
	return true
}

// FinalStop returns the stop a completion note is pinned to: the last stop of
// the route. ok is false for an empty stop list, where no note can be placed.
func FinalStop(stopNames []string) (string, bool) {
	if len(stopNames) == 0 {
		return "", false
	}
	return stopNames[len(stopNames)-1], true
}

// IncompleteStops lists the stops still missing a confirmation, in route order.
func IncompleteStops(events []entity.JobEvent, stopNames []string) []string {
	var missing []string
	for _, name := range stopNames {
		if !StopComplete(events, name) {
			missing = append(missing, name)
		}
	}
	return missing
}
