package metrics

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/statespace/internal/search"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/problems/puzzle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solvePuzzle(t *testing.T, hooks domain.Hooks) *domain.Result[puzzle.Board] {
	t.Helper()
	start, err := puzzle.Parse("1 2 3 / 4 _ 5 / 7 8 6")
	require.NoError(t, err)

	res, err := search.AStar(context.Background(), search.Config{Hooks: hooks},
		puzzle.NewProblem(start, puzzle.Goal, puzzle.Manhattan))
	require.NoError(t, err)
	return res
}

func TestCollector_CountsMatchResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	res := solvePuzzle(t, c.Hooks())

	assert.Equal(t, float64(res.Expanded), testutil.ToFloat64(c.expansions.WithLabelValues("astar")))
	assert.Equal(t, float64(res.Generated), testutil.ToFloat64(c.generated.WithLabelValues("astar")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.searches.WithLabelValues("astar", "solved")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.pathLength))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	solvePuzzle(t, c.Hooks())

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "# TYPE statespace_expansions_total counter")
	assert.Contains(t, out, `statespace_searches_total{algorithm="astar",status="solved"} 1`)
	assert.Contains(t, out, "statespace_search_duration_seconds_bucket")
}
