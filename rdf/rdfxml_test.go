package rdf

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

const testSBOLNS = "http://sbols.org/v2#"

func rdfDoc(body string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<rdf:RDF xmlns:rdf="` + rdfXMLNS + `" xmlns:sbol="` + testSBOLNS + `" xmlns:dcterms="http://purl.org/dc/terms/">` + body + `</rdf:RDF>`
}

func TestRDFXMLResourceObject(t *testing.T) {
	input := rdfDoc(`<rdf:Description rdf:about="http://example.org/s"><sbol:access rdf:resource="http://sbols.org/v2#public"/></rdf:Description>`)
	dec := newRDFXMLDecoder(strings.NewReader(input), defaultOptions())
	triple, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iri, ok := triple.O.(IRI); !ok || iri.Value != "http://sbols.org/v2#public" {
		t.Fatalf("expected IRI object, got %v", triple.O)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestRDFXMLNodeIDObject(t *testing.T) {
	input := rdfDoc(`<rdf:Description rdf:about="http://example.org/s"><sbol:p rdf:nodeID="n1"/></rdf:Description>`)
	dec := newRDFXMLDecoder(strings.NewReader(input), defaultOptions())
	triple, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := triple.O.(BlankNode); !ok || b.ID != "n1" {
		t.Fatalf("expected blank node n1, got %v", triple.O)
	}
}

func TestRDFXMLTypedNodeEmitsType(t *testing.T) {
	input := rdfDoc(`<sbol:Sequence rdf:about="http://example.com/seq"><sbol:elements>atcg</sbol:elements></sbol:Sequence>`)
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := IRI{Value: "http://example.com/seq"}
	types := g.Types(seq)
	if len(types) != 1 || types[0].Value != testSBOLNS+"Sequence" {
		t.Fatalf("unexpected types %v", types)
	}
	v, ok := g.Value(seq, IRI{Value: testSBOLNS + "elements"})
	if !ok {
		t.Fatal("expected elements value")
	}
	if lit, ok := v.(Literal); !ok || lit.Lexical != "atcg" {
		t.Fatalf("unexpected elements %v", v)
	}
}

func TestRDFXMLNestedNodesKeepDocumentOrder(t *testing.T) {
	input := rdfDoc(`
  <sbol:ComponentDefinition rdf:about="http://example.com/cd">
    <sbol:displayId>cd</sbol:displayId>
    <sbol:component>
      <sbol:Component rdf:about="http://example.com/cd/c">
        <sbol:access rdf:resource="http://sbols.org/v2#public"/>
      </sbol:Component>
    </sbol:component>
    <sbol:role rdf:resource="http://identifiers.org/so/SO:0000167"/>
  </sbol:ComponentDefinition>`)
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"<http://example.com/cd> <" + RDFType.Value + "> <" + testSBOLNS + "ComponentDefinition> .",
		`<http://example.com/cd> <` + testSBOLNS + `displayId> "cd" .`,
		"<http://example.com/cd> <" + testSBOLNS + "component> <http://example.com/cd/c> .",
		"<http://example.com/cd/c> <" + RDFType.Value + "> <" + testSBOLNS + "Component> .",
		"<http://example.com/cd/c> <" + testSBOLNS + "access> <http://sbols.org/v2#public> .",
		"<http://example.com/cd> <" + testSBOLNS + "role> <http://identifiers.org/so/SO:0000167> .",
	}
	got := g.Triples()
	if len(got) != len(want) {
		t.Fatalf("expected %d triples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("triple %d: got %s, want %s", i, got[i].String(), want[i])
		}
	}

	top := g.TopLevelSubjects()
	if len(top) != 1 || top[0] != (IRI{Value: "http://example.com/cd"}) {
		t.Fatalf("unexpected top-level subjects %v", top)
	}
	if g.IsTopLevel(IRI{Value: "http://example.com/cd/c"}) {
		t.Fatal("nested component must not be top level")
	}
}

func TestRDFXMLLiteralDatatypeAndLang(t *testing.T) {
	input := rdfDoc(`<rdf:Description rdf:about="http://example.org/s">
  <dcterms:title xml:lang="en">Title</dcterms:title>
  <sbol:start rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">5</sbol:start>
</rdf:Description>`)
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := IRI{Value: "http://example.org/s"}
	title, _ := g.Value(s, IRI{Value: "http://purl.org/dc/terms/title"})
	if lit, ok := title.(Literal); !ok || lit.Lang != "en" || lit.Lexical != "Title" {
		t.Fatalf("unexpected title %v", title)
	}
	start, _ := g.Value(s, IRI{Value: testSBOLNS + "start"})
	if lit, ok := start.(Literal); !ok || lit.Datatype.Value != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Fatalf("unexpected start %v", start)
	}
}

func TestRDFXMLParseTypeResource(t *testing.T) {
	input := rdfDoc(`<rdf:Description rdf:about="http://example.org/s"><sbol:note rdf:parseType="Resource"><sbol:text>hi</sbol:text></sbol:note></rdf:Description>`)
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	note, ok := g.Value(IRI{Value: "http://example.org/s"}, IRI{Value: testSBOLNS + "note"})
	if !ok {
		t.Fatal("expected note")
	}
	b, ok := note.(BlankNode)
	if !ok {
		t.Fatalf("expected blank node, got %v", note)
	}
	text, _ := g.Value(b, IRI{Value: testSBOLNS + "text"})
	if lit, ok := text.(Literal); !ok || lit.Lexical != "hi" {
		t.Fatalf("unexpected text %v", text)
	}
}

func TestRDFXMLBaseAndID(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="` + rdfXMLNS + `" xmlns:sbol="` + testSBOLNS + `" xml:base="http://example.org/doc"><sbol:Sequence rdf:ID="seq"/></rdf:RDF>`
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasSubject(IRI{Value: "http://example.org/doc#seq"}) {
		t.Fatalf("expected resolved subject, got %v", g.Subjects())
	}
}

func TestRDFXMLNamespacesInDeclarationOrder(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="` + rdfXMLNS + `" xmlns:sbol="` + testSBOLNS + `" xmlns:igem="http://wiki.synbiohub.org/wiki/Terms/igem#"></rdf:RDF>`
	dec := newRDFXMLDecoder(strings.NewReader(input), defaultOptions())
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
	order, ns := dec.declaredNamespaces()
	if strings.Join(order, ",") != "rdf,sbol,igem" {
		t.Fatalf("unexpected order %v", order)
	}
	if ns["igem"] != "http://wiki.synbiohub.org/wiki/Terms/igem#" {
		t.Fatalf("unexpected igem namespace %q", ns["igem"])
	}
}

func TestRDFXMLUnqualifiedPropertyRejected(t *testing.T) {
	input := rdfDoc(`<rdf:Description rdf:about="http://example.org/s"><plain>v</plain></rdf:Description>`)
	_, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML)
	if err == nil {
		t.Fatal("expected error for property without namespace")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Format != "rdfxml" {
		t.Fatalf("expected rdfxml ParseError, got %v", err)
	}
}

func TestRDFXMLTruncatedInput(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="` + rdfXMLNS + `"><rdf:Description rdf:about="http://example.org/s">`
	_, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML)
	if err == nil {
		t.Fatal("expected error")
	}
	if Code(err) != ErrCodeParseError {
		t.Fatalf("expected ErrCodeParseError, got %v", Code(err))
	}
}

func TestRDFXMLDepthLimit(t *testing.T) {
	input := rdfDoc(`<sbol:ComponentDefinition rdf:about="http://example.com/cd"><sbol:component><sbol:Component rdf:about="http://example.com/cd/c"/></sbol:component></sbol:ComponentDefinition>`)
	_, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML, OptMaxDepth(1))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("expected depth error, got %v", err)
	}
	if Code(err) != ErrCodeDepthExceeded {
		t.Fatalf("expected ErrCodeDepthExceeded, got %v", Code(err))
	}
}

func TestRDFXMLTripleLimit(t *testing.T) {
	input := rdfDoc(`<sbol:Sequence rdf:about="http://example.com/seq"><sbol:elements>a</sbol:elements></sbol:Sequence>`)
	_, err := ReadGraph(context.Background(), strings.NewReader(input), FormatRDFXML, OptMaxTriples(1))
	if Code(err) != ErrCodeTripleLimitExceeded {
		t.Fatalf("expected ErrCodeTripleLimitExceeded, got %v", err)
	}
}

func TestReadGraphContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadGraph(ctx, strings.NewReader(rdfDoc("")), FormatRDFXML)
	if Code(err) != ErrCodeContextCanceled {
		t.Fatalf("expected ErrCodeContextCanceled, got %v", err)
	}
}

func TestNewTripleDecoderUnsupportedFormat(t *testing.T) {
	_, err := NewTripleDecoder(strings.NewReader(""), FormatJSONLD)
	if Code(err) != ErrCodeUnsupportedFormat {
		t.Fatalf("expected ErrCodeUnsupportedFormat, got %v", err)
	}
}
