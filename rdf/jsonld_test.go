package rdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestReadJSONLDInlineContext(t *testing.T) {
	input := `{
  "@context": {"sbol": "http://sbols.org/v2#"},
  "@id": "http://example.com/seq",
  "@type": "sbol:Sequence",
  "sbol:elements": "atcg"
}`
	g, err := ReadGraph(context.Background(), strings.NewReader(input), FormatAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := IRI{Value: "http://example.com/seq"}
	types := g.Types(seq)
	if len(types) != 1 || types[0].Value != testSBOLNS+"Sequence" {
		t.Fatalf("unexpected types %v", types)
	}
	v, _ := g.Value(seq, IRI{Value: testSBOLNS + "elements"})
	lit, ok := v.(Literal)
	if !ok || lit.Lexical != "atcg" || lit.Datatype.Value != "" {
		t.Fatalf("unexpected elements %v", v)
	}
	if g.Namespaces()["sbol"] != testSBOLNS {
		t.Fatalf("expected sbol prefix from @context")
	}
	if g.TracksTopLevel() {
		t.Fatal("JSON-LD graphs do not record top-level nodes")
	}
}

func TestReadJSONLDInvalidJSON(t *testing.T) {
	_, err := ReadJSONLD(context.Background(), strings.NewReader("{"))
	if Code(err) != ErrCodeParseError {
		t.Fatalf("expected ErrCodeParseError, got %v", err)
	}
}

func TestJSONLDRoundTrip(t *testing.T) {
	g := NewGraph()
	g.DeclareNamespace("sbol", testSBOLNS)
	seq := IRI{Value: "http://example.com/seq"}
	g.Add(NewTriple(seq, RDFType, IRI{Value: testSBOLNS + "Sequence"}))
	g.Add(NewTriple(seq, IRI{Value: testSBOLNS + "elements"}, Literal{Lexical: "atcg"}))
	g.Add(NewTriple(seq, IRI{Value: "http://purl.org/dc/terms/title"}, Literal{Lexical: "T", Lang: "en"}))

	var buf bytes.Buffer
	if err := WriteJSONLD(context.Background(), &buf, g); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"sbol"`) {
		t.Fatalf("expected sbol prefix in context, got %s", buf.String())
	}

	back, err := ReadJSONLD(context.Background(), &buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if back.Len() != g.Len() {
		t.Fatalf("expected %d triples, got %d", g.Len(), back.Len())
	}
	title, _ := back.Value(seq, IRI{Value: "http://purl.org/dc/terms/title"})
	if lit, ok := title.(Literal); !ok || lit.Lang != "en" {
		t.Fatalf("unexpected title %v", title)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"  <?xml version=\"1.0\"?>", FormatRDFXML, true},
		{"\n{\"@id\": \"x\"}", FormatJSONLD, true},
		{"[]", FormatJSONLD, true},
		{"@prefix", FormatAuto, false},
		{"", FormatAuto, false},
	}
	for _, tt := range tests {
		got, _, ok := DetectFormat(strings.NewReader(tt.input))
		if got != tt.want || ok != tt.ok {
			t.Errorf("DetectFormat(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, ok := ParseFormat("JSON-LD"); !ok || f != FormatJSONLD {
		t.Fatalf("unexpected %v %v", f, ok)
	}
	if f, ok := FormatFromPath("design.xml"); !ok || f != FormatRDFXML {
		t.Fatalf("unexpected %v %v", f, ok)
	}
	if _, ok := FormatFromPath("design"); ok {
		t.Fatal("expected no format without extension")
	}
}
