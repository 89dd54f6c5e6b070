package match

import (
	"context"

	"github.com/mcoot/battleship-go/internal/model"
)

// Reporter receives match events as they happen, e.g. to render them
type Reporter interface {
	Report(ctx context.Context, event model.Event)
}

// NopReporter discards all events
type NopReporter struct{}

// Report does nothing
func (NopReporter) Report(ctx context.Context, event model.Event) {}

// RecordingReporter keeps every event it receives, in order
type RecordingReporter struct {
	Events []model.Event
}

// Report appends the event
func (r *RecordingReporter) Report(ctx context.Context, event model.Event) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events of the given type
func (r *RecordingReporter) OfType(t model.EventType) []model.Event {
	var result []model.Event
	for _, e := range r.Events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}
