package event

import (
	"sort"
	"time"
)

// Phase is the derived temporal state of an event. It is recomputed from the
// clock on every read and never persisted.
type Phase string

const (
	PhaseUpcoming  Phase = "upcoming"
	PhaseHappening Phase = "happening"
	PhaseEnded     Phase = "ended"
)

// DefaultDuration is the effective length of an event with no explicit end.
const DefaultDuration = 2 * time.Hour

// EffectiveEnd returns the explicit end time, or start + two hours when none
// is stored.
func EffectiveEnd(date, endTime time.Time) time.Time {
	if !endTime.IsZero() {
		return endTime
	}
	return date.Add(DefaultDuration)
}

// DerivePhase computes the temporal phase of an event from its stored start
// and end against now. A zero endTime means the default two-hour window.
func DerivePhase(date, endTime, now time.Time) Phase {
	if now.Before(date) {
		return PhaseUpcoming
	}
	if now.Before(EffectiveEnd(date, endTime)) {
		return PhaseHappening
	}
	return PhaseEnded
}

// PhaseAt reports the event's phase at the given instant.
func (e Event) PhaseAt(now time.Time) Phase {
	return DerivePhase(e.Date, e.EndTime, now)
}

// CanRegister reports whether an RSVP submission is accepted: the event must
// be published, have registration enabled, and not yet have started.
func CanRegister(e Event, now time.Time) bool {
	return e.Status == StatusPublished && e.RSVPEnabled && e.PhaseAt(now) == PhaseUpcoming
}

// Partition is the dashboard split of events around now.
type Partition struct {
	Upcoming []Event `json:"upcoming"`
	Archived []Event `json:"archived"`
}

// PartitionByArchive splits events by start date against now: upcoming holds
// date >= now sorted ascending, archived holds date < now sorted descending.
// This deliberately ignores end times; it is a coarser split than DerivePhase
// and the two must not be unified.
func PartitionByArchive(events []Event, now time.Time) Partition {
	p := Partition{Upcoming: []Event{}, Archived: []Event{}}
	for _, e := range events {
		if e.Date.Before(now) {
			p.Archived = append(p.Archived, e)
		} else {
			p.Upcoming = append(p.Upcoming, e)
		}
	}
	sort.SliceStable(p.Upcoming, func(i, j int) bool {
		return p.Upcoming[i].Date.Before(p.Upcoming[j].Date)
	})
	sort.SliceStable(p.Archived, func(i, j int) bool {
		return p.Archived[i].Date.After(p.Archived[j].Date)
	})
	return p
}
