package sbol

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/sbol-go/rdf"
)

func sbolFile(body string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:sbol="http://sbols.org/v2#"
         xmlns:dcterms="http://purl.org/dc/terms/"
         xmlns:igem="http://wiki.synbio.org/wiki/Terms/igem#"
         xmlns:ext="http://example.org/ext#">
` + body + `
</rdf:RDF>`
}

func TestReadGenericTopLevel(t *testing.T) {
	src := sbolFile(`
  <ext:Widget rdf:about="http://example.org/widget1">
    <sbol:displayId>widget1</sbol:displayId>
    <dcterms:title>Widget one</dcterms:title>
    <ext:color>blue</ext:color>
    <ext:partOf rdf:resource="http://example.org/assembly"/>
  </ext:Widget>
  <rdf:Description rdf:about="http://example.org/loose">
    <ext:note>untyped</ext:note>
  </rdf:Description>`)

	doc := readString(t, src)
	generics := doc.ListGenericTopLevels()
	require.Len(t, generics, 2)

	w, ok := doc.GetGenericTopLevel("http://example.org/widget1")
	require.True(t, ok)
	assert.Equal(t, QName{Namespace: "http://example.org/ext#", LocalName: "Widget", Prefix: "ext"}, w.RDFType)
	assert.Equal(t, "widget1", w.DisplayID())
	assert.Equal(t, "Widget one", w.Name)
	require.Len(t, w.Annotations, 2)
	assert.Equal(t, "ext:color", w.Annotations[0].Name.String())
	assert.Equal(t, "blue", w.Annotations[0].Value.Literal)
	assert.Equal(t, "ext:partOf", w.Annotations[1].Name.String())
	assert.Equal(t, "http://example.org/assembly", w.Annotations[1].Value.URI)

	loose, ok := doc.GetGenericTopLevel("http://example.org/loose")
	require.True(t, ok)
	assert.Equal(t, rdfDescription, loose.RDFType)

	// Both survive a write.
	out := writeString(t, doc)
	assert.Contains(t, out, `<ext:Widget rdf:about="http://example.org/widget1">`)
	assert.Contains(t, out, `<rdf:Description rdf:about="http://example.org/loose">`)
	assert.Equal(t, out, writeString(t, readString(t, out)))
}

func TestReadKeepsUnknownProperties(t *testing.T) {
	src := sbolFile(`
  <sbol:ComponentDefinition rdf:about="http://example.org/BBa_R0040">
    <sbol:displayId>BBa_R0040</sbol:displayId>
    <sbol:type rdf:resource="http://www.biopax.org/release/biopax-level3.owl#DnaRegion"/>
    <sbol:role rdf:resource="http://identifiers.org/so/SO:0000167"/>
    <igem:status rdf:resource="http://wiki.synbio.org/wiki/Terms/igem#status/Available"/>
    <rdfs:comment xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#">TetR repressible</rdfs:comment>
  </sbol:ComponentDefinition>`)

	doc := readString(t, src)
	cd, ok := doc.GetComponentDefinition("http://example.org/BBa_R0040")
	require.True(t, ok)
	assert.Equal(t, []string{"http://www.biopax.org/release/biopax-level3.owl#DnaRegion"}, cd.Types(),
		"types are read as written")
	require.Len(t, cd.Annotations, 2)
	assert.Equal(t, "igem:status", cd.Annotations[0].Name.String())
	assert.Equal(t, "http://wiki.synbio.org/wiki/Terms/igem#status/Available", cd.Annotations[0].Value.URI)

	// rdfs is only declared on the property element.
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#", cd.Annotations[1].Name.Namespace)
	assert.Equal(t, "comment", cd.Annotations[1].Name.LocalName)
	assert.NotEmpty(t, cd.Annotations[1].Name.Prefix)

	out := writeString(t, doc)
	assert.Contains(t, out, `xmlns:igem="http://wiki.synbio.org/wiki/Terms/igem#"`)
	assert.Contains(t, out, "TetR repressible")
	assert.Equal(t, out, writeString(t, readString(t, out)))
}

func TestReadKeepsForeignSBOLProperties(t *testing.T) {
	src := sbolFile(`
  <sbol:Attachment rdf:about="http://example.org/sheet">
    <sbol:displayId>sheet</sbol:displayId>
    <sbol:source rdf:resource="http://example.org/files/sheet.pdf"/>
    <sbol:format rdf:resource="http://identifiers.org/edam/format_3508"/>
  </sbol:Attachment>
  <sbol:ComponentDefinition rdf:about="http://example.org/part">
    <sbol:type rdf:resource="http://www.biopax.org/release/biopax-level3.owl#DnaRegion"/>
    <sbol:source rdf:resource="http://example.org/files/part.gb"/>
  </sbol:ComponentDefinition>`)

	doc := readString(t, src)
	gtl, ok := doc.GetGenericTopLevel("http://example.org/sheet")
	require.True(t, ok)
	assert.Equal(t, "sheet", gtl.DisplayID())
	require.Len(t, gtl.Annotations, 2)
	assert.Equal(t, "sbol:source", gtl.Annotations[0].Name.String())
	assert.Equal(t, "http://example.org/files/sheet.pdf", gtl.Annotations[0].Value.URI)
	assert.Equal(t, "sbol:format", gtl.Annotations[1].Name.String())

	cd, ok := doc.GetComponentDefinition("http://example.org/part")
	require.True(t, ok)
	require.Len(t, cd.Annotations, 1)
	assert.Equal(t, "sbol:source", cd.Annotations[0].Name.String())
	assert.Equal(t, "http://example.org/files/part.gb", cd.Annotations[0].Value.URI)

	out := writeString(t, doc)
	assert.Contains(t, out, "http://example.org/files/sheet.pdf")
	assert.Contains(t, out, "http://example.org/files/part.gb")
	assert.Equal(t, out, writeString(t, readString(t, out)))
}

func TestReadDefaultsMissingTypes(t *testing.T) {
	doc := readString(t, sbolFile(`
  <sbol:ComponentDefinition rdf:about="http://example.org/bare"/>`))
	cd, ok := doc.GetComponentDefinition("http://example.org/bare")
	require.True(t, ok)
	assert.Equal(t, []string{"http://www.biopax.org/release/biopax-level3.owl#DnaRegion"}, cd.Types())
}

func TestReadLegacyAnnotationPredicate(t *testing.T) {
	src := sbolFile(`
  <sbol:ComponentDefinition rdf:about="http://example.org/part">
    <sbol:type rdf:resource="http://www.biopax.org/release/biopax-level3.owl#DnaRegion"/>
  </sbol:ComponentDefinition>
  <sbol:ComponentDefinition rdf:about="http://example.org/device">
    <sbol:type rdf:resource="http://www.biopax.org/release/biopax-level3.owl#DnaRegion"/>
    <sbol:component>
      <sbol:Component rdf:about="http://example.org/device/part">
        <sbol:definition rdf:resource="http://example.org/part"/>
      </sbol:Component>
    </sbol:component>
    <sbol:SequenceAnnotation>
      <sbol:SequenceAnnotation rdf:about="http://example.org/device/anno">
        <sbol:component rdf:resource="http://example.org/device/part"/>
        <sbol:location>
          <sbol:Range rdf:about="http://example.org/device/anno/range">
            <sbol:start>5</sbol:start>
            <sbol:end>9</sbol:end>
          </sbol:Range>
        </sbol:location>
      </sbol:SequenceAnnotation>
    </sbol:SequenceAnnotation>
  </sbol:ComponentDefinition>`)

	doc := readString(t, src)
	device, ok := doc.GetComponentDefinition("http://example.org/device")
	require.True(t, ok)
	require.Len(t, device.SequenceAnnotations, 1)
	sa := device.SequenceAnnotations[0]
	require.NotNil(t, sa.Component)
	assert.Equal(t, "http://example.org/device/part", sa.Component.Identity())
	assert.Equal(t, "http://sbols.org/v2#public", sa.Component.Access())
	pos, ok := sa.FirstLocation()
	require.True(t, ok)
	assert.Equal(t, 5, pos)

	// Written back with the current predicate.
	out := writeString(t, doc)
	assert.Contains(t, out, "<sbol:sequenceAnnotation>")
	assert.NotContains(t, out, "<sbol:SequenceAnnotation>")
}

func TestReadDanglingReferenceClearsDocument(t *testing.T) {
	doc := buildDesign(t)
	require.NotZero(t, doc.Len())

	src := sbolFile(`
  <sbol:Sequence rdf:about="http://example.org/seq">
    <sbol:elements>atg</sbol:elements>
  </sbol:Sequence>
  <sbol:ComponentDefinition rdf:about="http://example.org/device">
    <sbol:component>
      <sbol:Component rdf:about="http://example.org/device/missing">
        <sbol:definition rdf:resource="http://example.org/nowhere"/>
      </sbol:Component>
    </sbol:component>
  </sbol:ComponentDefinition>`)

	err := doc.Read(strings.NewReader(src))
	require.Error(t, err)
	assert.Equal(t, ErrCodeDanglingReference, Code(err))
	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "http://example.org/nowhere", refErr.Identity)
	assert.Equal(t, "http://example.org/device/missing", refErr.Referrer)
	assert.Equal(t, "definition", refErr.Field)

	assert.Equal(t, 0, doc.Len())
	assert.NotContains(t, doc.Namespaces(), "igem", "namespaces from the failed read are dropped")
}

func TestReadDanglingReferences(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"collection member": {
			body: `<sbol:Collection rdf:about="http://example.org/lib">
    <sbol:member rdf:resource="http://example.org/ghost"/>
  </sbol:Collection>`,
			field: "member",
		},
		"sequence": {
			body: `<sbol:ComponentDefinition rdf:about="http://example.org/cd">
    <sbol:sequence rdf:resource="http://example.org/ghost"/>
  </sbol:ComponentDefinition>`,
			field: "sequence",
		},
		"participant": {
			body: `<sbol:ModuleDefinition rdf:about="http://example.org/md">
    <sbol:interaction>
      <sbol:Interaction rdf:about="http://example.org/md/i">
        <sbol:participation>
          <sbol:Participation rdf:about="http://example.org/md/i/p">
            <sbol:participant rdf:resource="http://example.org/ghost"/>
          </sbol:Participation>
        </sbol:participation>
      </sbol:Interaction>
    </sbol:interaction>
  </sbol:ModuleDefinition>`,
			field: "participant",
		},
		"module definition": {
			body: `<sbol:ModuleDefinition rdf:about="http://example.org/md">
    <sbol:module>
      <sbol:Module rdf:about="http://example.org/md/m">
        <sbol:definition rdf:resource="http://example.org/ghost"/>
      </sbol:Module>
    </sbol:module>
  </sbol:ModuleDefinition>`,
			field: "definition",
		},
		"annotated component": {
			body: `<sbol:ComponentDefinition rdf:about="http://example.org/cd">
    <sbol:sequenceAnnotation>
      <sbol:SequenceAnnotation rdf:about="http://example.org/cd/sa">
        <sbol:component rdf:resource="http://example.org/ghost"/>
      </sbol:SequenceAnnotation>
    </sbol:sequenceAnnotation>
  </sbol:ComponentDefinition>`,
			field: "component",
		},
		"constraint subject": {
			body: `<sbol:ComponentDefinition rdf:about="http://example.org/cd">
    <sbol:sequenceConstraint>
      <sbol:SequenceConstraint rdf:about="http://example.org/cd/sc">
        <sbol:subject rdf:resource="http://example.org/ghost"/>
      </sbol:SequenceConstraint>
    </sbol:sequenceConstraint>
  </sbol:ComponentDefinition>`,
			field: "subject",
		},
		"constraint object": {
			body: `<sbol:ComponentDefinition rdf:about="http://example.org/cd">
    <sbol:component>
      <sbol:Component rdf:about="http://example.org/cd/c1"/>
    </sbol:component>
    <sbol:sequenceConstraint>
      <sbol:SequenceConstraint rdf:about="http://example.org/cd/sc">
        <sbol:subject rdf:resource="http://example.org/cd/c1"/>
        <sbol:object rdf:resource="http://example.org/ghost"/>
      </sbol:SequenceConstraint>
    </sbol:sequenceConstraint>
  </sbol:ComponentDefinition>`,
			field: "object",
		},
		"mapsTo local": {
			body: `<sbol:ComponentDefinition rdf:about="http://example.org/cd">
    <sbol:component>
      <sbol:Component rdf:about="http://example.org/cd/c1">
        <sbol:mapsTo>
          <sbol:MapsTo rdf:about="http://example.org/cd/c1/m">
            <sbol:local rdf:resource="http://example.org/ghost"/>
          </sbol:MapsTo>
        </sbol:mapsTo>
      </sbol:Component>
    </sbol:component>
  </sbol:ComponentDefinition>`,
			field: "local",
		},
		"mapsTo remote": {
			body: `<sbol:ModuleDefinition rdf:about="http://example.org/md">
    <sbol:functionalComponent>
      <sbol:FunctionalComponent rdf:about="http://example.org/md/fc"/>
    </sbol:functionalComponent>
    <sbol:module>
      <sbol:Module rdf:about="http://example.org/md/m">
        <sbol:mapsTo>
          <sbol:MapsTo rdf:about="http://example.org/md/m/map">
            <sbol:local rdf:resource="http://example.org/md/fc"/>
            <sbol:remote rdf:resource="http://example.org/ghost"/>
          </sbol:MapsTo>
        </sbol:mapsTo>
      </sbol:Module>
    </sbol:module>
  </sbol:ModuleDefinition>`,
			field: "remote",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc := newTestDocument(t)
			err := doc.Read(strings.NewReader(sbolFile(tc.body)))
			require.Error(t, err)
			var refErr *ReferenceError
			require.ErrorAs(t, err, &refErr)
			assert.Equal(t, "http://example.org/ghost", refErr.Identity)
			assert.Equal(t, tc.field, refErr.Field)
			assert.Equal(t, 0, doc.Len())
		})
	}
}

func TestReadSyntaxError(t *testing.T) {
	doc := newTestDocument(t)
	err := doc.Read(strings.NewReader(`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><broken`))
	require.Error(t, err)
	assert.Equal(t, ErrCodeSyntax, Code(err))
	assert.Equal(t, 0, doc.Len())
}

func TestReadBadCoordinate(t *testing.T) {
	doc := newTestDocument(t)
	err := doc.Read(strings.NewReader(sbolFile(`
  <sbol:ComponentDefinition rdf:about="http://example.org/cd">
    <sbol:sequenceAnnotation>
      <sbol:SequenceAnnotation rdf:about="http://example.org/cd/sa">
        <sbol:location>
          <sbol:Cut rdf:about="http://example.org/cd/sa/cut">
            <sbol:at>twelve</sbol:at>
          </sbol:Cut>
        </sbol:location>
      </sbol:SequenceAnnotation>
    </sbol:sequenceAnnotation>
  </sbol:ComponentDefinition>`)))
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidFieldType, Code(err))
}

func TestReadJSONLD(t *testing.T) {
	src := `{
  "@context": {
    "sbol": "http://sbols.org/v2#",
    "ext": "http://example.org/ext#"
  },
  "@graph": [
    {
      "@id": "http://example.org/seq",
      "@type": "sbol:Sequence",
      "sbol:displayId": "seq",
      "sbol:elements": "atgc",
      "sbol:encoding": {"@id": "http://www.chem.qmul.ac.uk/iubmb/misc/naseq.html"}
    },
    {
      "@id": "http://example.org/thing",
      "@type": "ext:Thing",
      "ext:size": "3"
    }
  ]
}`
	doc := newTestDocument(t)
	require.NoError(t, doc.ReadFormat(context.Background(), strings.NewReader(src), rdf.FormatJSONLD))

	seq, ok := doc.GetSequence("http://example.org/seq")
	require.True(t, ok)
	assert.Equal(t, "atgc", seq.Elements)

	thing, ok := doc.GetGenericTopLevel("http://example.org/thing")
	require.True(t, ok)
	assert.Equal(t, "ext:Thing", thing.RDFType.String())
	size, ok := thing.Find(QName{Namespace: "http://example.org/ext#", LocalName: "size"})
	require.True(t, ok)
	assert.Equal(t, "3", size.Value.Literal)
}

func TestReadLogsPasses(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	doc := newTestDocument(t, WithLogger(logger))

	require.NoError(t, doc.Read(strings.NewReader(writeString(t, buildDesign(t)))))
	assert.Contains(t, logs.String(), "pass=sequences")
	assert.Contains(t, logs.String(), "pass=collections")
}

func TestReadDecodeOptions(t *testing.T) {
	doc := newTestDocument(t, WithDecodeOptions(rdf.OptMaxTriples(3)))
	err := doc.Read(strings.NewReader(writeString(t, buildDesign(t))))
	require.Error(t, err)
	assert.ErrorIs(t, err, rdf.ErrTripleLimitExceeded)
	assert.Equal(t, 0, doc.Len())
}
