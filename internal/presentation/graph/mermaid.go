package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
)

// DefaultLimit bounds the number of configurations a Recorder keeps.
const DefaultLimit = 200

// Recorder collects the explored part of the search tree through lifecycle hooks.
// Configurations are identified by their fmt.Sprint form.
type Recorder struct {
	limit     int
	ids       map[string]int
	labels    []string
	edges     [][2]int
	edgeSet   map[[2]int]bool
	expanded  []int
	truncated bool
}

// NewRecorder keeps at most limit configurations (DefaultLimit when limit <= 0).
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Recorder{
		limit:   limit,
		ids:     make(map[string]int),
		edgeSet: make(map[[2]int]bool),
	}
}

// Hooks returns the hooks feeding the recorder.
func (r *Recorder) Hooks() domain.Hooks {
	return domain.Hooks{
		OnExpand: func(_ context.Context, e *domain.ExpandEvent) {
			id, ok := r.node(fmt.Sprint(e.State))
			if !ok {
				return
			}
			r.expanded = append(r.expanded, id)
			if e.Parent != nil {
				r.link(fmt.Sprint(e.Parent), fmt.Sprint(e.State))
			}
		},
	}
}

// Truncated reports whether configurations were dropped because of the limit.
func (r *Recorder) Truncated() bool {
	return r.truncated
}

func (r *Recorder) node(label string) (int, bool) {
	if id, ok := r.ids[label]; ok {
		return id, true
	}
	if len(r.labels) >= r.limit {
		r.truncated = true
		return 0, false
	}
	return r.add(label), true
}

// pin returns the node for label, adding it past the limit if needed.
func (r *Recorder) pin(label string) int {
	if id, ok := r.ids[label]; ok {
		return id
	}
	return r.add(label)
}

func (r *Recorder) add(label string) int {
	id := len(r.labels)
	r.ids[label] = id
	r.labels = append(r.labels, label)
	return id
}

func (r *Recorder) link(from, to string) {
	a, ok := r.node(from)
	if !ok {
		return
	}
	b, ok := r.node(to)
	if !ok {
		return
	}
	r.edge(a, b)
}

func (r *Recorder) edge(a, b int) {
	if e := [2]int{a, b}; !r.edgeSet[e] {
		r.edgeSet[e] = true
		r.edges = append(r.edges, e)
	}
}

// GraphOverlay marks the reported path on the explored tree.
type GraphOverlay struct {
	Path        []string
	CurrentNode string
}

// GenerateMermaid produces a Mermaid flowchart of the recorded tree.
// The initial configuration is drawn as a circle. Path nodes and links missing from the
// recording are added to rec, past its limit if needed, so the reported path is always connected.
// Overlay styles mark expanded configurations (visited), the path and the final configuration.
func GenerateMermaid(rec *Recorder, overlay *GraphOverlay) string {
	if overlay != nil {
		for i, label := range overlay.Path {
			id := rec.pin(label)
			if i > 0 {
				rec.edge(rec.ids[overlay.Path[i-1]], id)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for id, label := range rec.labels {
		opener, closer := "[", "]"
		if id == 0 {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", mermaidID(id), opener, escapeLabel(label), closer))
	}
	for _, e := range rec.edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", mermaidID(e[0]), mermaidID(e[1])))
	}
	if rec.truncated {
		sb.WriteString(fmt.Sprintf("    %%%% truncated after %d configurations\n", rec.limit))
	}

	if overlay == nil {
		return sb.String()
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef path fill:#c8e6c9,stroke:#1b5e20,stroke-width:3px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	onPath := make(map[int]bool)
	for _, label := range overlay.Path {
		if id, ok := rec.ids[label]; ok {
			onPath[id] = true
		}
	}
	styled := make(map[int]bool)
	for _, id := range rec.expanded {
		if !styled[id] && !onPath[id] {
			styled[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", mermaidID(id)))
		}
	}
	for _, label := range overlay.Path {
		id, ok := rec.ids[label]
		if !ok || styled[id] || label == overlay.CurrentNode {
			continue
		}
		styled[id] = true
		sb.WriteString(fmt.Sprintf("    class %s path;\n", mermaidID(id)))
	}
	if id, ok := rec.ids[overlay.CurrentNode]; ok && overlay.CurrentNode != "" {
		sb.WriteString(fmt.Sprintf("    class %s current;\n", mermaidID(id)))
	}

	return sb.String()
}

func mermaidID(id int) string {
	return fmt.Sprintf("s%d", id)
}

// escapeLabel keeps labels inside a quoted Mermaid string.
func escapeLabel(label string) string {
	s := strings.ReplaceAll(label, "\"", "#quot;")
	return strings.ReplaceAll(s, "\n", "<br/>")
}
