package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/statespace"
	"github.com/aretw0/statespace/internal/adapters/loam"
	"github.com/aretw0/statespace/internal/config"
	"github.com/aretw0/statespace/internal/logging"
	"github.com/aretw0/statespace/internal/metrics"
	"github.com/aretw0/statespace/internal/presentation/graph"
	"github.com/aretw0/statespace/internal/presentation/report"
	"github.com/aretw0/statespace/internal/presentation/tui"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Options carries the settings shared by every command.
type Options struct {
	// Dir is the catalog directory used when a target is not a file.
	Dir    string
	Logger *slog.Logger
	Out    io.Writer

	// Render pipes markdown output through glamour.
	Render bool
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return o.Logger
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// Overrides replace problem settings from the command line. Zero values keep the file's settings.
type Overrides struct {
	Algorithm string
	Heuristic string

	// MaxExpansions replaces the file's limit when positive and removes it when negative.
	MaxExpansions int
	Seed          int64
}

func (ov Overrides) apply(spec *config.ProblemSpec) error {
	if ov.Algorithm == "" && ov.Heuristic == "" && ov.MaxExpansions == 0 && ov.Seed == 0 {
		return nil
	}
	if ov.Algorithm != "" {
		alg, err := domain.ParseAlgorithm(ov.Algorithm)
		if err != nil {
			return fmt.Errorf("%w: %q", err, ov.Algorithm)
		}
		spec.Algorithm = string(alg)
	}
	if ov.Heuristic != "" {
		spec.Heuristic = ov.Heuristic
	}
	switch {
	case ov.MaxExpansions > 0:
		spec.Limits.MaxExpansions = ov.MaxExpansions
	case ov.MaxExpansions < 0:
		spec.Limits.MaxExpansions = 0
	}
	if ov.Seed != 0 {
		spec.Hill.Seed = ov.Seed
	}
	return spec.Validate()
}

// LoadProblem reads target as a problem file when it exists on disk, otherwise as a document ID
// in the catalog at dir.
func LoadProblem(ctx context.Context, dir, target string) (*config.ProblemSpec, error) {
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		return config.Load(target)
	}

	catalog, err := loam.Open(dir)
	if err != nil {
		return nil, err
	}
	return catalog.Get(ctx, target)
}

func prepare(ctx context.Context, target string, opts Options, ov Overrides) (registry.Runner, *config.ProblemSpec, error) {
	spec, err := LoadProblem(ctx, opts.Dir, target)
	if err != nil {
		return nil, nil, err
	}
	if err := ov.apply(spec); err != nil {
		return nil, nil, err
	}
	runner, err := registry.Default().Build(spec)
	if err != nil {
		return nil, nil, err
	}
	return runner, spec, nil
}

func searchOptions(ctx context.Context, logger *slog.Logger, hooks domain.Hooks) []statespace.Option {
	if logger.Enabled(ctx, slog.LevelDebug) {
		hooks = hooks.Merge(createDebugHooks(logger))
	}
	return []statespace.Option{
		statespace.WithLogger(logger),
		statespace.WithLifecycleHooks(hooks),
	}
}

// RunSolve solves target and prints the path, then the metrics when withMetrics is set.
// A run that ends without the goal is reported and returned as its sentinel error.
func RunSolve(ctx context.Context, target string, opts Options, ov Overrides, withMetrics bool) error {
	logger := opts.logger()
	out := opts.out()

	runner, spec, err := prepare(ctx, target, opts, ov)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	logger.Info("Solving", "problem", spec.Name, "kind", spec.Kind, "algorithm", spec.Algorithm)
	rep, err := runner.Solve(ctx, searchOptions(ctx, logger, collector.Hooks())...)
	if err != nil {
		return handleSearchError(err, out)
	}

	if opts.Render {
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		text, err := render(report.Markdown(rep))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(out, text)
	} else if err := report.WritePlain(out, rep); err != nil {
		return err
	}

	if withMetrics {
		fmt.Fprintln(out)
		if err := metrics.WriteText(out, reg); err != nil {
			return err
		}
	}

	if err := rep.Err(); err != nil {
		return fmt.Errorf("%s: %w", spec.Name, err)
	}
	return nil
}

// RunGraph solves target while recording the explored tree, then prints it as a Mermaid
// flowchart with the reported path highlighted.
func RunGraph(ctx context.Context, target string, opts Options, ov Overrides, limit int) error {
	logger := opts.logger()

	runner, _, err := prepare(ctx, target, opts, ov)
	if err != nil {
		return err
	}

	rec := graph.NewRecorder(limit)
	rep, err := runner.Solve(ctx, searchOptions(ctx, logger, rec.Hooks())...)
	if err != nil {
		return handleSearchError(err, opts.out())
	}
	if rec.Truncated() {
		logger.Warn("Graph truncated", "limit", limit, "expanded", rep.Expanded)
	}

	overlay := &graph.GraphOverlay{Path: rep.Path}
	if len(rep.Path) > 0 {
		overlay.CurrentNode = rep.Path[len(rep.Path)-1]
	}
	fmt.Fprint(opts.out(), graph.GenerateMermaid(rec, overlay))
	return nil
}

// RunList prints the problems of the catalog at opts.Dir.
func RunList(ctx context.Context, opts Options) error {
	catalog, err := loam.Open(opts.Dir)
	if err != nil {
		return err
	}
	entries, err := catalog.List(ctx)
	if err != nil {
		return err
	}
	out := opts.out()
	if len(entries) == 0 {
		printSystemMessage(out, "No problems found in '%s'.", opts.Dir)
		return nil
	}

	if opts.Render {
		var sb strings.Builder
		sb.WriteString("| ID | Name | Kind | Algorithm |\n|---|---|---|---|\n")
		for _, e := range entries {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", e.ID, e.Name, e.Kind, e.Algorithm)
		}
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		text, err := render(sb.String())
		if err != nil {
			return fmt.Errorf("failed to render list: %w", err)
		}
		fmt.Fprint(out, text)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKIND\tALGORITHM")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Kind, e.Algorithm)
	}
	return tw.Flush()
}

// handleSearchError turns a cancelled search into a message and a clean exit.
func handleSearchError(err error, out io.Writer) error {
	if errors.Is(err, context.Canceled) {
		printSystemMessage(out, "Search interrupted.")
		return nil
	}
	return err
}
