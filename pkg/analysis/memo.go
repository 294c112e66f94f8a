package analysis

import "slices"

type pathKey struct {
	src, dst string
}

// PathMemo memoizes unweighted shortest paths by (source, target).
// A stored nil path records that the target is unreachable.
//
// The memo is bound to one topology at a time; [PathMemo.Bind] with a
// different topology hash drops every entry.
type PathMemo struct {
	topology string
	paths    map[pathKey][]string
}

// NewPathMemo returns an empty memo.
func NewPathMemo() *PathMemo {
	return &PathMemo{paths: make(map[pathKey][]string)}
}

// Bind associates the memo with a topology hash. If the hash differs from the
// current one every entry is dropped and Bind returns true.
func (m *PathMemo) Bind(topology string) bool {
	if m.topology == topology {
		return false
	}
	m.topology = topology
	clear(m.paths)
	return true
}

// Topology returns the hash the memo is bound to.
func (m *PathMemo) Topology() string { return m.topology }

// Get returns a copy of the memoized path and whether an entry exists.
// An entry with a nil path means the target is unreachable.
func (m *PathMemo) Get(src, dst string) ([]string, bool) {
	p, ok := m.lookup(src, dst)
	return slices.Clone(p), ok
}

func (m *PathMemo) lookup(src, dst string) ([]string, bool) {
	p, ok := m.paths[pathKey{src, dst}]
	return p, ok
}

// Put stores path for (src, dst). The memo takes ownership of path.
func (m *PathMemo) Put(src, dst string, path []string) {
	m.paths[pathKey{src, dst}] = path
}

// Len returns the number of memoized pairs.
func (m *PathMemo) Len() int { return len(m.paths) }

// Invalidate drops every entry and the topology binding.
func (m *PathMemo) Invalidate() {
	clear(m.paths)
	m.topology = ""
}
