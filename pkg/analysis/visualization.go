package analysis

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/heliosviz/graphkit/pkg/graph"
)

// VisualizationMetrics score a layout by its node coordinates.
type VisualizationMetrics struct {
	// EdgeCrossings is the approximate crossing count |E|(|E|-1)/2, which
	// counts every edge pair. See SegmentCrossings for true intersections.
	EdgeCrossings int `json:"edge_crossings"`
	// NodeOverlaps counts node pairs closer than the overlap threshold.
	NodeOverlaps int `json:"node_overlaps"`
	// LayoutQuality is the mean of the crossing score and the overlap score,
	// each 1 - count/max (1 when max is 0).
	LayoutQuality float64 `json:"layout_quality"`
}

// VisualizationMetrics computes layout metrics for g. Edges with an unknown
// endpoint and duplicate node ids are excluded.
func (a *Analyzer) VisualizationMetrics(g *graph.Graph) VisualizationMetrics {
	ix := graph.NewIndex(g)
	e, n := ix.Edges, ix.Len()

	crossings := pairCount(e)
	overlaps := 0
	for i := range n {
		for j := i + 1; j < n; j++ {
			if distance(ix.Nodes[i], ix.Nodes[j]) < a.overlapThreshold {
				overlaps++
			}
		}
	}

	return VisualizationMetrics{
		EdgeCrossings: crossings,
		NodeOverlaps:  overlaps,
		LayoutQuality: (score(crossings, pairCount(e)) + score(overlaps, pairCount(n))) / 2,
	}
}

// SegmentCrossings counts pairs of straight edge segments that intersect.
// Pairs sharing an endpoint node and self-loops are ignored; collinear
// overlapping segments count as crossing.
func SegmentCrossings(g *graph.Graph) int {
	ix := graph.NewIndex(g)
	type segment struct {
		s, t   int
		p1, p2 r2.Vec
	}
	var segs []segment
	for _, e := range g.Edges {
		s, ok1 := ix.Lookup(e.Source)
		t, ok2 := ix.Lookup(e.Target)
		if !ok1 || !ok2 || s == t {
			continue
		}
		segs = append(segs, segment{s: s, t: t, p1: pointOf(ix.Nodes[s]), p2: pointOf(ix.Nodes[t])})
	}

	count := 0
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			if a.s == b.s || a.s == b.t || a.t == b.s || a.t == b.t {
				continue
			}
			if intersects(a.p1, a.p2, b.p1, b.p2) {
				count++
			}
		}
	}
	return count
}

func pointOf(n graph.Node) r2.Vec { return r2.Vec{X: n.X, Y: n.Y} }

func distance(a, b graph.Node) float64 {
	return r2.Norm(r2.Sub(pointOf(a), pointOf(b)))
}

func pairCount(n int) int { return n * (n - 1) / 2 }

func score(count, maxCount int) float64 {
	if maxCount == 0 {
		return 1
	}
	return 1 - float64(count)/float64(maxCount)
}

// orientation returns the sign of the cross product (q-p) x (r-p).
func orientation(p, q, r r2.Vec) int {
	v := r2.Cross(r2.Sub(q, p), r2.Sub(r, p))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment reports whether r, known to be collinear with p and q, lies
// within their bounding box.
func onSegment(p, q, r r2.Vec) bool {
	return min(p.X, q.X) <= r.X && r.X <= max(p.X, q.X) &&
		min(p.Y, q.Y) <= r.Y && r.Y <= max(p.Y, q.Y)
}

func intersects(p1, p2, q1, q2 r2.Vec) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)
	if o1 != o2 && o3 != o4 && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, p2, q2):
		return true
	case o3 == 0 && onSegment(q1, q2, p1):
		return true
	case o4 == 0 && onSegment(q1, q2, p2):
		return true
	}
	return false
}
