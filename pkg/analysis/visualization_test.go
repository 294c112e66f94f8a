package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heliosviz/graphkit/pkg/graph"
)

func TestVisualizationMetrics(t *testing.T) {
	tests := []struct {
		name      string
		g         *graph.Graph
		threshold float64
		want      VisualizationMetrics
	}{
		{
			name: "empty",
			g:    &graph.Graph{},
			want: VisualizationMetrics{LayoutQuality: 1},
		},
		{
			name: "scenario",
			g:    scenario(),
			// one edge pair; all four nodes lie within 20 units of each other
			want: VisualizationMetrics{EdgeCrossings: 1, NodeOverlaps: 6, LayoutQuality: 0},
		},
		{
			name:      "custom threshold",
			g:         scenario(),
			threshold: 0.5,
			want:      VisualizationMetrics{EdgeCrossings: 1, NodeOverlaps: 0, LayoutQuality: 0.5},
		},
		{
			name: "spread single edge",
			g: &graph.Graph{
				Nodes: []graph.Node{{ID: "a"}, {ID: "b", X: 100}},
				Edges: []graph.Edge{edge("a", "b")},
			},
			want: VisualizationMetrics{LayoutQuality: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.threshold > 0 {
				opts = append(opts, WithOverlapThreshold(tt.threshold))
			}
			got := New(opts...).VisualizationMetrics(tt.g)
			assert.Equal(t, tt.want.EdgeCrossings, got.EdgeCrossings)
			assert.Equal(t, tt.want.NodeOverlaps, got.NodeOverlaps)
			assert.InDelta(t, tt.want.LayoutQuality, got.LayoutQuality, 1e-12)
		})
	}
}

func TestSegmentCrossings(t *testing.T) {
	square := []graph.Node{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 10, Y: 0},
		{ID: "c", X: 10, Y: 10},
		{ID: "d", X: 0, Y: 10},
	}
	tests := []struct {
		name  string
		edges []graph.Edge
		want  int
	}{
		{"diagonals cross", []graph.Edge{edge("a", "c"), edge("b", "d")}, 1},
		{"sides share endpoints", []graph.Edge{edge("a", "b"), edge("b", "c"), edge("c", "d"), edge("d", "a")}, 0},
		{"opposite sides", []graph.Edge{edge("a", "b"), edge("c", "d")}, 0},
		{"square with diagonals", []graph.Edge{
			edge("a", "b"), edge("b", "c"), edge("c", "d"), edge("d", "a"), edge("a", "c"), edge("b", "d"),
		}, 1},
		{"self-loop ignored", []graph.Edge{edge("a", "a"), edge("b", "d")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &graph.Graph{Nodes: square, Edges: tt.edges}
			assert.Equal(t, tt.want, SegmentCrossings(g))
		})
	}

	t.Run("collinear overlap", func(t *testing.T) {
		g := &graph.Graph{
			Nodes: []graph.Node{{ID: "p"}, {ID: "q", X: 4}, {ID: "r", X: 2}, {ID: "s", X: 6}},
			Edges: []graph.Edge{edge("p", "q"), edge("r", "s")},
		}
		assert.Equal(t, 1, SegmentCrossings(g))
	})
}
