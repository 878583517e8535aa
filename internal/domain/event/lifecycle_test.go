package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var start = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func TestDerivePhaseDefaultWindow(t *testing.T) {
	var noEnd time.Time

	assert.Equal(t, PhaseUpcoming, DerivePhase(start, noEnd, start.Add(-time.Second)))
	assert.Equal(t, PhaseHappening, DerivePhase(start, noEnd, start))
	assert.Equal(t, PhaseHappening, DerivePhase(start, noEnd, start.Add(time.Second)))

	// Default window is exactly two hours.
	assert.Equal(t, PhaseHappening, DerivePhase(start, noEnd, start.Add(2*time.Hour-time.Second)))
	assert.Equal(t, PhaseEnded, DerivePhase(start, noEnd, start.Add(2*time.Hour)))
	assert.Equal(t, PhaseEnded, DerivePhase(start, noEnd, start.Add(7201*time.Second)))
}

func TestDerivePhaseExplicitEnd(t *testing.T) {
	end := start.Add(30 * time.Minute)

	assert.Equal(t, PhaseHappening, DerivePhase(start, end, start.Add(29*time.Minute)))
	// Explicit end overrides the two-hour default.
	assert.Equal(t, PhaseEnded, DerivePhase(start, end, start.Add(31*time.Minute)))
}

func TestEffectiveEnd(t *testing.T) {
	assert.Equal(t, start.Add(2*time.Hour), EffectiveEnd(start, time.Time{}))
	end := start.Add(45 * time.Minute)
	assert.Equal(t, end, EffectiveEnd(start, end))
}

func TestCanRegister(t *testing.T) {
	e := Event{Status: StatusPublished, RSVPEnabled: true, Date: start}

	assert.True(t, CanRegister(e, start.Add(-time.Hour)))

	// Registration closes the moment the event starts.
	assert.False(t, CanRegister(e, start.Add(time.Minute)), "happening must reject")
	assert.False(t, CanRegister(e, start.Add(3*time.Hour)), "ended must reject")

	disabled := e
	disabled.RSVPEnabled = false
	assert.False(t, CanRegister(disabled, start.Add(-time.Hour)))

	draft := e
	draft.Status = StatusDraft
	assert.False(t, CanRegister(draft, start.Add(-time.Hour)))
}

func TestPartitionByArchive(t *testing.T) {
	now := start
	past1 := Event{ID: "p1", Date: now.Add(-48 * time.Hour)}
	past2 := Event{ID: "p2", Date: now.Add(-time.Hour)}
	exact := Event{ID: "x", Date: now}
	future1 := Event{ID: "f1", Date: now.Add(time.Hour)}
	future2 := Event{ID: "f2", Date: now.Add(72 * time.Hour)}

	p := PartitionByArchive([]Event{future2, past1, exact, future1, past2}, now)

	// Boundary is inclusive on the upcoming side, ascending order.
	assert.Equal(t, []string{"x", "f1", "f2"}, eventIDs(p.Upcoming))
	// Archived is descending (most recent first).
	assert.Equal(t, []string{"p2", "p1"}, eventIDs(p.Archived))
}

func TestPartitionIgnoresEndTime(t *testing.T) {
	now := start
	// Started an hour ago and still running: the three-state badge says
	// happening, but the dashboard split files it under archived.
	running := Event{ID: "r", Date: now.Add(-time.Hour), EndTime: now.Add(time.Hour)}

	assert.Equal(t, PhaseHappening, running.PhaseAt(now))

	p := PartitionByArchive([]Event{running}, now)
	assert.Equal(t, []string{"r"}, eventIDs(p.Archived))
	assert.Empty(t, p.Upcoming)
}

func eventIDs(events []Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
