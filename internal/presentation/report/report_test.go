package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/aretw0/statespace/internal/presentation/report"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *registry.Report {
	return &registry.Report{
		Name:        "eight",
		Kind:        "puzzle",
		Description: "Slide the blank right, then down.",
		Heuristic:   "manhattan",
		RunID:       "r1",
		Algorithm:   domain.AlgorithmAStar,
		Status:      domain.StatusSolved,
		Path:        []string{"123|405|786", "123|450|786", "123|456|780"},
		Grids:       []string{"1 2 3\n4 _ 5\n7 8 6", "1 2 3\n4 5 _\n7 8 6", "1 2 3\n4 5 6\n7 8 _"},
		Expanded:    2,
		Generated:   7,
		Duration:    time.Millisecond,
	}
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WritePlain(&buf, sampleReport()))

	assert.Equal(t, "  0  123|405|786\n"+
		"  1  123|450|786\n"+
		"  2  123|456|780\n"+
		"eight: solved with astar, 2 moves, 2 expanded, 7 generated\n", buf.String())
}

func TestWritePlain_Restarts(t *testing.T) {
	rep := sampleReport()
	rep.Algorithm = domain.AlgorithmHillClimb
	rep.Status = domain.StatusLocalOptimum
	rep.Restarts = 3

	var buf bytes.Buffer
	require.NoError(t, report.WritePlain(&buf, rep))
	assert.Contains(t, buf.String(), "eight: local_optimum with hill")
	assert.Contains(t, buf.String(), ", 3 restarts\n")
}

func TestMarkdown(t *testing.T) {
	md := report.Markdown(sampleReport())

	assert.Contains(t, md, "# eight\n\nSlide the blank right, then down.\n")
	assert.Contains(t, md, "| Status | **solved** |")
	assert.Contains(t, md, "| Heuristic | manhattan |")
	assert.Contains(t, md, "| Run | `r1` |")
	assert.Contains(t, md, "### Step 2\n\n```text\n1 2 3\n4 5 6\n7 8 _\n```")
	assert.NotContains(t, md, "Restarts")
}

func TestMarkdown_NoPath(t *testing.T) {
	rep := sampleReport()
	rep.Status = domain.StatusNoSolution
	rep.Path, rep.Grids = nil, nil

	md := report.Markdown(rep)
	assert.Contains(t, md, "| Moves | 0 |")
	assert.NotContains(t, md, "## Path")
}
