package rdf

import "sort"

// RDFNamespace is the RDF syntax namespace.
const RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// RDFType is the rdf:type predicate.
var RDFType = IRI{Value: RDFNamespace + "type"}

// Graph is an in-memory set of triples. Triples keep the order in which
// they were added, so a graph decoded from a document lists each subject's
// statements in document order.
//
// Besides the triples, a Graph records the namespace prefixes declared by
// its source and, for sources that nest node elements, which subjects were
// written at the top level of the document.
type Graph struct {
	triples   []Triple
	seen      map[string]struct{}
	bySubject map[string][]int

	namespaces map[string]string

	trackTopLevel bool
	topLevel      map[string]struct{}
	topOrder      []Term
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:       make(map[string]struct{}),
		bySubject:  make(map[string][]int),
		namespaces: make(map[string]string),
		topLevel:   make(map[string]struct{}),
	}
}

// Add inserts a triple. Duplicates are ignored.
func (g *Graph) Add(t Triple) {
	key := termKey(t.S) + " " + t.P.Value + " " + termKey(t.O)
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.triples = append(g.triples, t)
	sk := termKey(t.S)
	g.bySubject[sk] = append(g.bySubject[sk], len(g.triples)-1)
}

// Len returns the number of triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns all triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// TriplesFor returns the triples whose subject is s, in insertion order.
func (g *Graph) TriplesFor(s Term) []Triple {
	idx := g.bySubject[termKey(s)]
	out := make([]Triple, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.triples[i])
	}
	return out
}

// HasSubject reports whether s is the subject of at least one triple.
func (g *Graph) HasSubject(s Term) bool {
	return len(g.bySubject[termKey(s)]) > 0
}

// Objects returns every object of (s, p, *).
func (g *Graph) Objects(s Term, p IRI) []Term {
	var out []Term
	for _, i := range g.bySubject[termKey(s)] {
		if g.triples[i].P.Value == p.Value {
			out = append(out, g.triples[i].O)
		}
	}
	return out
}

// Value returns the first object of (s, p, *).
func (g *Graph) Value(s Term, p IRI) (Term, bool) {
	for _, i := range g.bySubject[termKey(s)] {
		if g.triples[i].P.Value == p.Value {
			return g.triples[i].O, true
		}
	}
	return nil, false
}

// Types returns the rdf:type IRIs of s.
func (g *Graph) Types(s Term) []IRI {
	var out []IRI
	for _, o := range g.Objects(s, RDFType) {
		if iri, ok := o.(IRI); ok {
			out = append(out, iri)
		}
	}
	return out
}

// SubjectsOfType returns the distinct subjects typed typ, in first-seen order.
func (g *Graph) SubjectsOfType(typ IRI) []Term {
	var out []Term
	seen := map[string]struct{}{}
	for _, t := range g.triples {
		if t.P.Value != RDFType.Value {
			continue
		}
		if iri, ok := t.O.(IRI); !ok || iri.Value != typ.Value {
			continue
		}
		k := termKey(t.S)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t.S)
	}
	return out
}

// DeclareNamespace records a prefix declared by the source document.
// A later declaration of the same prefix wins.
func (g *Graph) DeclareNamespace(prefix, uri string) {
	g.namespaces[prefix] = uri
}

// Namespaces returns a copy of the declared prefix to namespace mapping.
func (g *Graph) Namespaces() map[string]string {
	out := make(map[string]string, len(g.namespaces))
	for k, v := range g.namespaces {
		out[k] = v
	}
	return out
}

// NamespacePrefixes returns the declared prefixes in sorted order.
func (g *Graph) NamespacePrefixes() []string {
	out := make([]string, 0, len(g.namespaces))
	for k := range g.namespaces {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarkTopLevel records s as a node written at the document top level.
// Calling it switches the graph into top-level tracking mode.
func (g *Graph) MarkTopLevel(s Term) {
	g.trackTopLevel = true
	k := termKey(s)
	if _, ok := g.topLevel[k]; ok {
		return
	}
	g.topLevel[k] = struct{}{}
	g.topOrder = append(g.topOrder, s)
}

// TracksTopLevel reports whether the source recorded top-level nodes.
// Flat sources such as JSON-LD do not.
func (g *Graph) TracksTopLevel() bool { return g.trackTopLevel }

// IsTopLevel reports whether s was recorded as a top-level node.
func (g *Graph) IsTopLevel(s Term) bool {
	_, ok := g.topLevel[termKey(s)]
	return ok
}

// TopLevelSubjects returns the recorded top-level nodes in document order.
func (g *Graph) TopLevelSubjects() []Term {
	out := make([]Term, len(g.topOrder))
	copy(out, g.topOrder)
	return out
}

// Subjects returns every distinct subject in first-seen order.
func (g *Graph) Subjects() []Term {
	var out []Term
	seen := map[string]struct{}{}
	for _, t := range g.triples {
		k := termKey(t.S)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t.S)
	}
	return out
}
