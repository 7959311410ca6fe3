package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/statespace/internal/presentation/graph"
	"github.com/aretw0/statespace/internal/search"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/problems/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expand(rec *graph.Recorder, state, parent any) {
	rec.Hooks().OnExpand(context.Background(), &domain.ExpandEvent{State: state, Parent: parent})
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		record   func(*graph.Recorder)
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Initial Node Shape",
			record: func(r *graph.Recorder) {
				expand(r, "(4,0)", nil)
				expand(r, "(1,3)", "(4,0)")
			},
			contains: []string{
				`s0(("(4,0)"))`,
				`s1["(1,3)"]`,
				"s0 --> s1",
			},
			excludes: []string{"classDef"},
		},
		{
			name: "Label Escaping",
			record: func(r *graph.Recorder) {
				expand(r, `say "hi"`, nil)
				expand(r, "1 2\n3 _", `say "hi"`)
			},
			contains: []string{
				`s0(("say #quot;hi#quot;"))`,
				`s1["1 2<br/>3 _"]`,
			},
		},
		{
			name: "Path Overlay",
			record: func(r *graph.Recorder) {
				expand(r, "a", nil)
				expand(r, "b", "a")
				expand(r, "c", "a")
			},
			overlay: &graph.GraphOverlay{Path: []string{"a", "c", "goal"}, CurrentNode: "goal"},
			contains: []string{
				"classDef visited",
				"class s1 visited;",
				"class s0 path;",
				"class s2 path;",
				"s2 --> s3",
				`s3["goal"]`,
				"class s3 current;",
			},
			excludes: []string{"class s0 visited;"},
		},
		{
			name:     "Initial Is Goal",
			record:   func(*graph.Recorder) {},
			overlay:  &graph.GraphOverlay{Path: []string{"only"}, CurrentNode: "only"},
			contains: []string{`s0(("only"))`, "class s0 current;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := graph.NewRecorder(0)
			tt.record(rec)

			got := graph.GenerateMermaid(rec, tt.overlay)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestRecorder_Limit(t *testing.T) {
	rec := graph.NewRecorder(2)
	expand(rec, "a", nil)
	expand(rec, "b", "a")
	expand(rec, "c", "b")

	assert.True(t, rec.Truncated())
	got := graph.GenerateMermaid(rec, nil)
	assert.Contains(t, got, "%% truncated after 2 configurations")
	assert.NotContains(t, got, `"c"`)
}

func TestGenerateMermaid_PathPastLimit(t *testing.T) {
	rec := graph.NewRecorder(2)
	expand(rec, "a", nil)
	expand(rec, "b", "a")
	expand(rec, "c", "b")
	require.True(t, rec.Truncated())

	got := graph.GenerateMermaid(rec, &graph.GraphOverlay{Path: []string{"a", "b", "c", "d"}, CurrentNode: "d"})

	assert.Contains(t, got, `s2["c"]`)
	assert.Contains(t, got, `s3["d"]`)
	assert.Contains(t, got, "s0 --> s1\n")
	assert.Contains(t, got, "s1 --> s2\n")
	assert.Contains(t, got, "s2 --> s3\n")
	assert.Contains(t, got, "class s2 path;")
	assert.Contains(t, got, "class s3 current;")
}

func TestRecorder_SearchHooks(t *testing.T) {
	start, err := puzzle.Parse("123|405|786")
	require.NoError(t, err)

	rec := graph.NewRecorder(0)
	res, err := search.AStar(context.Background(), search.Config{Hooks: rec.Hooks()},
		puzzle.NewProblem(start, puzzle.Goal, puzzle.Manhattan))
	require.NoError(t, err)

	path := make([]string, len(res.Path))
	for i, b := range res.Path {
		path[i] = b.String()
	}
	got := graph.GenerateMermaid(rec, &graph.GraphOverlay{Path: path, CurrentNode: path[len(path)-1]})

	assert.Contains(t, got, `s0(("123|405|786"))`)
	assert.Contains(t, got, `s1["123|450|786"]`)
	assert.Contains(t, got, `s2["123|456|780"]`)
	assert.Contains(t, got, "s1 --> s2")
	assert.Contains(t, got, "class s2 current;")
}
