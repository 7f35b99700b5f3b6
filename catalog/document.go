// SPDX-License-Identifier: MIT
// Package: profilekit/catalog
//
// document.go — YAML document model, decoding and encoding.

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Document is a decoded profile file.
type Document struct {
	Context  ContextSpec `yaml:"context"`
	Profiles []Entry     `yaml:"profiles"`
}

// ContextSpec is the serialized form of simctx.Context. Zero or absent
// fields stay unset.
type ContextSpec struct {
	Dimensionality int       `yaml:"dimensionality,omitempty"`
	DomainLength   []float64 `yaml:"domain_length,omitempty,flow"`
	Duration       *float64  `yaml:"duration,omitempty"`
}

// Entry is one named metadata record.
type Entry struct {
	ID               string `yaml:"id"`
	profile.Metadata `yaml:",inline"`
}

// Item is a built entry.
type Item struct {
	ID      string
	Profile *profile.Profile
}

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown fields are rejected.
func Parse(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("catalog: parse: %w", err)
	}
	return doc, nil
}

// SimContext converts the document context into a simctx.Context.
// Errors: ErrInvalidContext on a dimensionality other than 0, 1, 2 or on
// negative or NaN lengths.
func (d Document) SimContext() (simctx.Context, error) {
	cs := d.Context
	var opts []simctx.Option
	switch cs.Dimensionality {
	case 0:
	case 1, 2:
		opts = append(opts, simctx.WithDimensionality(simctx.FromAxes(cs.Dimensionality)))
	default:
		return simctx.Context{}, fmt.Errorf("%w: dimensionality %d", ErrInvalidContext, cs.Dimensionality)
	}
	for i, l := range cs.DomainLength {
		if l < 0 || math.IsNaN(l) {
			return simctx.Context{}, fmt.Errorf("%w: domain_length[%d]=%v", ErrInvalidContext, i, l)
		}
	}
	if len(cs.DomainLength) > 0 {
		opts = append(opts, simctx.WithDomainLength(cs.DomainLength...))
	}
	if cs.Duration != nil {
		t := *cs.Duration
		if t < 0 || math.IsNaN(t) {
			return simctx.Context{}, fmt.Errorf("%w: duration=%v", ErrInvalidContext, t)
		}
		opts = append(opts, simctx.WithDuration(t))
	}
	return simctx.New(opts...), nil
}

// BuildAll builds every entry in document order.
// Errors: ErrDuplicateID, ErrMissingParameter for an empty id, and any
// Build error, prefixed with the entry id.
func (d Document) BuildAll(sc simctx.Context) ([]Item, error) {
	seen := make(map[string]struct{}, len(d.Profiles))
	items := make([]Item, 0, len(d.Profiles))
	for i, e := range d.Profiles {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog: profiles[%d]: id: %w", i, ErrMissingParameter)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("catalog: %q: %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = struct{}{}

		p, err := Build(sc, e.Metadata)
		if err != nil {
			return nil, fmt.Errorf("catalog: %q: %w", e.ID, err)
		}
		items = append(items, Item{ID: e.ID, Profile: p})
	}
	return items, nil
}

// Find returns the entry with the given id.
func (d Document) Find(id string) (Entry, bool) {
	for _, e := range d.Profiles {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ContextOf is the inverse of Document.SimContext.
func ContextOf(sc simctx.Context) ContextSpec {
	cs := ContextSpec{
		Dimensionality: sc.Dimensionality().Axes(),
		DomainLength:   sc.DomainLengths(),
	}
	if t, ok := sc.Duration(); ok {
		cs.Duration = &t
	}
	return cs
}

// FromItems assembles a document from built profiles, recording the
// resolved metadata of each.
func FromItems(sc simctx.Context, items []Item) Document {
	doc := Document{Context: ContextOf(sc), Profiles: make([]Entry, 0, len(items))}
	for _, it := range items {
		doc.Profiles = append(doc.Profiles, Entry{ID: it.ID, Metadata: it.Profile.Metadata()})
	}
	return doc
}

// Marshal encodes a document as YAML with two-space indentation.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("catalog: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("catalog: marshal: %w", err)
	}
	return buf.Bytes(), nil
}
