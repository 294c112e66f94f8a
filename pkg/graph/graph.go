package graph

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/heliosviz/graphkit/pkg/errors"
)

// Format identifies a graph file encoding.
type Format string

// Supported graph file formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// defaultWeight is assigned to edges decoded without a weight field.
const defaultWeight = 1.0

// =============================================================================
// Format Detection
// =============================================================================

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported graph file extension %q (want .json, .yaml or .toml)", filepath.Ext(path))
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown graph format %q", s)
}

// =============================================================================
// Graph Serialization API
// =============================================================================

// ReadFile reads a graph file, choosing the decoder from the file extension.
func ReadFile(path string) (*Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

// Read decodes a graph in the given format from r. Read does not close r.
func Read(r io.Reader, format Format) (*Graph, error) {
	var data document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&data); err != nil && err != io.EOF {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode toml")
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown graph format %q", format)
	}
	return data.graph(), nil
}

// Unmarshal decodes a JSON graph.
func Unmarshal(data []byte) (*Graph, error) {
	return Read(bytes.NewReader(data), FormatJSON)
}

// WriteFile writes g to path, choosing the encoder from the file extension.
// The file is created with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f, format)
}

// Write encodes g in the given format to w.
func Write(g *Graph, w io.Writer, format Format) error {
	out := normalized(g)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown graph format %q", format)
	}
	return nil
}

// Marshal encodes g as indented JSON.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf, FormatJSON); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Hash returns a SHA-256 content hash of g, stable across file formats.
// It is used as the graph component of cache keys.
func Hash(g *Graph) string {
	data, _ := json.Marshal(normalized(g))
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// TopologyHash returns a SHA-256 hash of the node ids and edges of g,
// ignoring coordinates and labels. Two snapshots with the same topology hash
// produce the same traversal results.
func TopologyHash(g *Graph) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, n := range g.Nodes {
		_ = enc.Encode(n.ID)
	}
	_ = enc.Encode(len(g.Nodes))
	for _, e := range g.Edges {
		_ = enc.Encode(e)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// =============================================================================
// Internal Implementation
// =============================================================================

// document is the decoding shape. Weight is a pointer so that an omitted
// weight can be told apart from an explicit zero.
type document struct {
	Nodes []Node         `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []documentEdge `json:"edges" yaml:"edges" toml:"edges"`
}

type documentEdge struct {
	Source string   `json:"source" yaml:"source" toml:"source"`
	Target string   `json:"target" yaml:"target" toml:"target"`
	Weight *float64 `json:"weight" yaml:"weight" toml:"weight"`
}

func (d document) graph() *Graph {
	g := &Graph{
		Nodes: d.Nodes,
		Edges: make([]Edge, len(d.Edges)),
	}
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	for i, e := range d.Edges {
		w := defaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		g.Edges[i] = Edge{Source: e.Source, Target: e.Target, Weight: w}
	}
	return g
}

// normalized replaces nil slices so every encoder emits empty arrays.
func normalized(g *Graph) Graph {
	out := Graph{Nodes: g.Nodes, Edges: g.Edges}
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	if out.Edges == nil {
		out.Edges = []Edge{}
	}
	return out
}
