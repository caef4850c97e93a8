package util

import (
	"time"

	eventsv1 "k8s.io/api/events/v1"
)

// EventTime picks the most recent timestamp an event carries. The
// events API fills different fields depending on which client wrote
// the event and whether it is part of a series.
func EventTime(e *eventsv1.Event) time.Time {
	if e.Series != nil && !e.Series.LastObservedTime.IsZero() {
		return e.Series.LastObservedTime.Time
	}
	if !e.EventTime.IsZero() {
		return e.EventTime.Time
	}
	if !e.DeprecatedLastTimestamp.IsZero() {
		return e.DeprecatedLastTimestamp.Time
	}
	return e.CreationTimestamp.Time
}
