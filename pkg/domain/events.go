package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSearchStart EventType = "search_start"
	EventExpand      EventType = "expand"
	EventSearchEnd   EventType = "search_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
	Algorithm Algorithm `json:"algorithm"`
}

// SearchEvent marks the start or the end of a run. Result fields are only set on end.
type SearchEvent struct {
	EventBase
	Status    Status        `json:"status,omitempty"`
	Expanded  int           `json:"expanded,omitempty"`
	Generated int           `json:"generated,omitempty"`
	PathLen   int           `json:"path_len,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// ExpandEvent is emitted once per expanded configuration.
type ExpandEvent struct {
	EventBase
	// State is the configuration being expanded. Its dynamic type is the problem's S.
	State any `json:"state"`
	// Parent is the configuration that generated State, nil for the initial state.
	Parent any `json:"parent,omitempty"`
	// Depth is the number of moves from the initial state.
	Depth int `json:"depth"`
	// Priority is g+h for A*, h for hill climbing and the depth for breadth-first search.
	Priority     int `json:"priority"`
	FrontierSize int `json:"frontier_size"`
	Successors   int `json:"successors"`
}

// Hooks defines callbacks for search observability. Nil callbacks are skipped.
type Hooks struct {
	OnSearchStart func(context.Context, *SearchEvent)
	OnExpand      func(context.Context, *ExpandEvent)
	OnSearchEnd   func(context.Context, *SearchEvent)
}

// Merge returns hooks that invoke h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnSearchStart: chain(h.OnSearchStart, other.OnSearchStart),
		OnExpand:      chain(h.OnExpand, other.OnExpand),
		OnSearchEnd:   chain(h.OnSearchEnd, other.OnSearchEnd),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
