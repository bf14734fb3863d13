package rdf

import "testing"

func TestGraphAddIgnoresDuplicates(t *testing.T) {
	g := NewGraph()
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	g.Add(NewTriple(s, p, Literal{Lexical: "v"}))
	g.Add(NewTriple(s, p, Literal{Lexical: "v"}))
	g.Add(NewTriple(s, p, IRI{Value: "v"}))
	if g.Len() != 2 {
		t.Fatalf("expected 2 triples, got %d", g.Len())
	}
	if len(g.Objects(s, p)) != 2 {
		t.Fatalf("expected 2 objects")
	}
}

func TestGraphSubjectsOfTypeDistinct(t *testing.T) {
	g := NewGraph()
	typ := IRI{Value: "http://example.org/T"}
	a := IRI{Value: "http://example.org/a"}
	b := BlankNode{ID: "b"}
	g.Add(NewTriple(a, RDFType, typ))
	g.Add(NewTriple(b, RDFType, typ))
	g.Add(NewTriple(a, RDFType, IRI{Value: "http://example.org/Other"}))
	got := g.SubjectsOfType(typ)
	if len(got) != 2 || got[0] != Term(a) || got[1] != Term(b) {
		t.Fatalf("unexpected subjects %v", got)
	}
	if len(g.Types(a)) != 2 {
		t.Fatalf("expected two types for a")
	}
}

func TestGraphNamespacesAndTopLevel(t *testing.T) {
	g := NewGraph()
	g.DeclareNamespace("sbol", "http://sbols.org/v2#")
	g.DeclareNamespace("dcterms", "http://purl.org/dc/terms/")
	prefixes := g.NamespacePrefixes()
	if len(prefixes) != 2 || prefixes[0] != "dcterms" || prefixes[1] != "sbol" {
		t.Fatalf("unexpected prefixes %v", prefixes)
	}
	ns := g.Namespaces()
	ns["sbol"] = "changed"
	if g.Namespaces()["sbol"] != "http://sbols.org/v2#" {
		t.Fatal("Namespaces must return a copy")
	}

	if g.TracksTopLevel() {
		t.Fatal("fresh graph should not track top-level nodes")
	}
	s := IRI{Value: "http://example.org/s"}
	g.MarkTopLevel(s)
	g.MarkTopLevel(s)
	if !g.TracksTopLevel() || !g.IsTopLevel(s) || len(g.TopLevelSubjects()) != 1 {
		t.Fatal("expected single top-level subject")
	}
}

func TestTermKeyKeepsKindsApart(t *testing.T) {
	if termKey(IRI{Value: "x"}) == termKey(BlankNode{ID: "x"}) {
		t.Fatal("IRI and blank node keys must differ")
	}
	if termKey(Literal{Lexical: "x"}) == termKey(Literal{Lexical: "x", Lang: "en"}) {
		t.Fatal("language must be part of the literal key")
	}
}
