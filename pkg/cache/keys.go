package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Report kinds used in ReportKeyOpts.Kind.
const (
	KindAnalyze = "analyze"
	KindCluster = "cluster"
	KindPath    = "path"
)

// ReportKeyOpts holds every option that changes the content of a report.
// Options that only affect how the work is done, such as the worker count,
// are not part of the key.
type ReportKeyOpts struct {
	Kind             string  `json:"kind"`
	Centrality       bool    `json:"centrality,omitempty"`
	OverlapThreshold float64 `json:"overlap_threshold,omitempty"`
	Algorithm        string  `json:"algorithm,omitempty"`
	K                int     `json:"k,omitempty"`
	Source           string  `json:"source,omitempty"`
	Target           string  `json:"target,omitempty"`
	Weighted         bool    `json:"weighted,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ReportKey returns the key of a report computed from the graph with the
	// given content hash.
	ReportKey(graphHash string, opts ReportKeyOpts) string
}

// DefaultKeyer builds keys of the form "report:<kind>:<sha256>", where the
// digest covers the graph hash and opts.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ReportKey implements Keyer.
func (DefaultKeyer) ReportKey(graphHash string, opts ReportKeyOpts) string {
	data, _ := json.Marshal(struct {
		Graph string        `json:"graph"`
		Opts  ReportKeyOpts `json:"opts"`
	}{graphHash, opts})
	return "report:" + opts.Kind + ":" + Hash(data)
}

// prefixKeyer prepends a fixed prefix to every key of an inner Keyer.
type prefixKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a Keyer whose keys are those of inner with prefix
// prepended. A nil inner means DefaultKeyer. The CLI scopes keys by build
// version so a newer binary never reads reports written by an older one:
//
//	keyer := NewScopedKeyer(nil, buildinfo.Version+":")
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return prefixKeyer{inner: inner, prefix: prefix}
}

func (k prefixKeyer) ReportKey(graphHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(graphHash, opts)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
