package graph

import (
	"fmt"
	"strings"

	errs "github.com/heliosviz/graphkit/pkg/errors"
)

// IssueKind classifies a structural problem found by [Graph.Issues].
type IssueKind string

// Issue kinds.
const (
	IssueInvalidID     IssueKind = "invalid_id"
	IssueDuplicateID   IssueKind = "duplicate_id"
	IssueDanglingEdge  IssueKind = "dangling_edge"
	IssueInvalidWeight IssueKind = "invalid_weight"
)

// Issue is one structural problem in a graph snapshot.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Subject string    `json:"subject"` // Node id or "source->target"
	Message string    `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Subject, i.Message)
}

// Issues returns every structural problem in g, nodes first, in input order.
func (g *Graph) Issues() []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if err := errs.ValidateNodeID(n.ID); err != nil {
			issues = append(issues, Issue{Kind: IssueInvalidID, Subject: n.ID, Message: errs.UserMessage(err)})
			// The index still resolves edges to this node.
			seen[n.ID] = true
			continue
		}
		if seen[n.ID] {
			issues = append(issues, Issue{Kind: IssueDuplicateID, Subject: n.ID, Message: "node id appears more than once"})
			continue
		}
		seen[n.ID] = true
	}
	for _, e := range g.Edges {
		subject := e.Source + "->" + e.Target
		if !seen[e.Source] {
			issues = append(issues, Issue{Kind: IssueDanglingEdge, Subject: subject, Message: fmt.Sprintf("unknown source %q", e.Source)})
		}
		if !seen[e.Target] {
			issues = append(issues, Issue{Kind: IssueDanglingEdge, Subject: subject, Message: fmt.Sprintf("unknown target %q", e.Target)})
		}
		if err := errs.ValidateWeight(e.Weight); err != nil {
			issues = append(issues, Issue{Kind: IssueInvalidWeight, Subject: subject, Message: errs.UserMessage(err)})
		}
	}
	return issues
}

// Validate returns an INVALID_GRAPH error listing every issue, or nil.
func (g *Graph) Validate() error {
	issues := g.Issues()
	if len(issues) == 0 {
		return nil
	}
	parts := make([]string, len(issues))
	for i, is := range issues {
		parts[i] = is.String()
	}
	return errs.New(errs.ErrCodeInvalidGraph, "%d issue(s): %s", len(issues), strings.Join(parts, "; "))
}
