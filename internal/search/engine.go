package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aretw0/statespace/search"

// contextCheckInterval is how many expansions run between context polls.
const contextCheckInterval = 256

// Config carries the cross-cutting settings shared by every driver.
type Config struct {
	Logger *slog.Logger
	Hooks  domain.Hooks

	// MaxExpansions bounds the number of expansions. Zero means unbounded.
	MaxExpansions int

	// TracerProvider defaults to the global OpenTelemetry provider.
	TracerProvider trace.TracerProvider

	// RunID is generated when empty.
	RunID string

	HillClimb HillClimbOptions
}

// run holds the bookkeeping of a single search invocation that does not depend on S.
type run struct {
	cfg       Config
	id        string
	algorithm domain.Algorithm
	logger    *slog.Logger
	span      trace.Span
	started   time.Time
	expanded  int
	generated int
}

func begin(ctx context.Context, cfg Config, algorithm domain.Algorithm) (context.Context, *run) {
	r := &run{
		cfg:       cfg,
		id:        cfg.RunID,
		algorithm: algorithm,
		logger:    cfg.Logger,
		started:   time.Now(),
	}
	if r.id == "" {
		r.id = uuid.NewString()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r.logger = r.logger.With("run_id", r.id, "algorithm", string(algorithm))

	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	ctx, r.span = provider.Tracer(tracerName).Start(ctx, "search."+string(algorithm),
		trace.WithAttributes(
			attribute.String("search.run_id", r.id),
			attribute.String("search.algorithm", string(algorithm)),
		),
	)

	r.logger.DebugContext(ctx, "search started", "max_expansions", cfg.MaxExpansions)
	if cfg.Hooks.OnSearchStart != nil {
		cfg.Hooks.OnSearchStart(ctx, &domain.SearchEvent{EventBase: r.base(domain.EventSearchStart)})
	}
	return ctx, r
}

func (r *run) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		RunID:     r.id,
		Algorithm: r.algorithm,
	}
}

// admit is called before every expansion. It reports false once the expansion budget is spent
// and returns an error when the context is done.
func (r *run) admit(ctx context.Context) (bool, error) {
	if r.cfg.MaxExpansions > 0 && r.expanded >= r.cfg.MaxExpansions {
		return false, nil
	}
	if r.expanded%contextCheckInterval == 0 {
		if err := ctx.Err(); err != nil {
			return false, r.abort(ctx, err)
		}
	}
	return true, nil
}

// expand records one expansion and fires the OnExpand hook.
func (r *run) expand(ctx context.Context, state, parent any, depth, priority, frontierSize, successors int) {
	r.expanded++
	r.generated += successors
	if r.cfg.Hooks.OnExpand == nil {
		return
	}
	r.cfg.Hooks.OnExpand(ctx, &domain.ExpandEvent{
		EventBase:    r.base(domain.EventExpand),
		State:        state,
		Parent:       parent,
		Depth:        depth,
		Priority:     priority,
		FrontierSize: frontierSize,
		Successors:   successors,
	})
}

func (r *run) abort(ctx context.Context, err error) error {
	r.span.AddEvent("cancelled", trace.WithAttributes(attribute.Int("search.expanded", r.expanded)))
	r.span.RecordError(err)
	r.span.SetStatus(codes.Error, err.Error())
	r.span.End()
	r.logger.WarnContext(ctx, "search aborted", "expanded", r.expanded, "error", err)
	return fmt.Errorf("search aborted after %d expansions: %w", r.expanded, err)
}

func (r *run) end(ctx context.Context, status domain.Status, pathLen int, elapsed time.Duration) {
	r.span.SetAttributes(
		attribute.String("search.status", string(status)),
		attribute.Int("search.expanded", r.expanded),
		attribute.Int("search.generated", r.generated),
		attribute.Int("search.path_len", pathLen),
	)
	r.span.End()

	r.logger.InfoContext(ctx, "search finished",
		"status", string(status),
		"expanded", r.expanded,
		"generated", r.generated,
		"path_len", pathLen,
		"duration", elapsed,
	)
	if r.cfg.Hooks.OnSearchEnd != nil {
		r.cfg.Hooks.OnSearchEnd(ctx, &domain.SearchEvent{
			EventBase: r.base(domain.EventSearchEnd),
			Status:    status,
			Expanded:  r.expanded,
			Generated: r.generated,
			PathLen:   pathLen,
			Duration:  elapsed,
		})
	}
}

func finish[S comparable](ctx context.Context, r *run, status domain.Status, path []S, restarts int) *domain.Result[S] {
	res := &domain.Result[S]{
		RunID:     r.id,
		Algorithm: r.algorithm,
		Status:    status,
		Path:      path,
		Expanded:  r.expanded,
		Generated: r.generated,
		Restarts:  restarts,
		Duration:  time.Since(r.started),
	}
	r.end(ctx, status, len(path), res.Duration)
	return res
}
