package sbol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/sbol-go/rdf"
)

func newTestDocument(t *testing.T, opts ...DocumentOption) *Document {
	t.Helper()
	doc, err := NewDocument(testNS, opts...)
	require.NoError(t, err)
	return doc
}

func TestNewDocumentNamespace(t *testing.T) {
	for _, ns := range []string{"example.org", "", "/relative/path", "http://", "http://exa mple.org/"} {
		_, err := NewDocument(ns)
		require.Error(t, err, ns)
		assert.ErrorIs(t, err, ErrInvalidNamespaceURI, ns)
		assert.Equal(t, ErrCodeInvalidNamespaceURI, Code(err), ns)
	}

	doc, err := NewDocument("http://example.org/sbol/")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/sbol/", doc.Namespace())
	assert.Equal(t, 0, doc.Len())
}

func TestAddDuplicateIdentity(t *testing.T) {
	doc := newTestDocument(t)

	first, err := NewComponentDefinition("pLac", nil, nil)
	require.NoError(t, err)
	require.NoError(t, doc.AddComponentDefinition(first))

	dup, err := NewComponentDefinition("pLac", nil, nil)
	require.NoError(t, err)
	err = doc.AddComponentDefinition(dup)
	require.Error(t, err)
	assert.Equal(t, ErrCodeDuplicateIdentity, Code(err))
	var idErr *IdentityError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, testNS+"pLac", idErr.Identity)

	// The absolute form of the same identity collides too.
	abs, err := NewComponentDefinition(testNS+"pLac", nil, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, doc.AddComponentDefinition(abs), ErrDuplicateIdentity)

	other, err := NewComponentDefinition("tetR", nil, nil)
	require.NoError(t, err)
	require.NoError(t, doc.AddComponentDefinition(other))

	got, ok := doc.GetComponentDefinition("tetR")
	require.True(t, ok)
	assert.Same(t, other, got)
	got, ok = doc.GetComponentDefinition(testNS + "pLac")
	require.True(t, ok)
	assert.Same(t, first, got)

	// Registries are per kind.
	seq, err := NewSequence("pLac", "ttgaca", "DNA")
	require.NoError(t, err)
	require.NoError(t, doc.AddSequence(seq))
}

func TestRemoveAndList(t *testing.T) {
	doc := newTestDocument(t)
	for _, id := range []string{"c", "a", "b"} {
		m, err := NewModel(id, "http://example.org/"+id+".xml", "SBML", "Continuous")
		require.NoError(t, err)
		require.NoError(t, doc.AddModel(m))
	}

	var ids []string
	for _, m := range doc.ListModels() {
		ids = append(ids, m.Identity())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	doc.RemoveModel("b")
	doc.RemoveModel("missing")
	_, ok := doc.GetModel("b")
	assert.False(t, ok)
	assert.Len(t, doc.ListModels(), 2)
}

func TestNamespaces(t *testing.T) {
	doc := newTestDocument(t, WithNamespace("igem", "http://wiki.synbio.org/wiki/Terms/igem#"))

	ns := doc.Namespaces()
	assert.Equal(t, NamespaceSBOL, ns["sbol"])
	assert.Equal(t, "http://wiki.synbio.org/wiki/Terms/igem#", ns["igem"])

	require.NoError(t, doc.AddNamespace("ext", "http://example.org/ext#"))
	assert.Equal(t, "http://example.org/ext#", doc.Namespaces()["ext"])

	err := doc.AddNamespace("sbol", "http://example.org/not-sbol#")
	assert.ErrorIs(t, err, ErrInvalidNamespaceURI)
	assert.ErrorIs(t, doc.AddNamespace("bad prefix", "http://example.org/x#"), ErrInvalidNamespaceURI)
	assert.ErrorIs(t, doc.AddNamespace("x", "not-a-uri"), ErrInvalidNamespaceURI)

	doc.Clear()
	ns = doc.Namespaces()
	assert.Contains(t, ns, "igem", "constructor namespaces survive Clear")
	assert.NotContains(t, ns, "ext")

	_, err = NewDocument(testNS, WithNamespace("rdf", "http://example.org/rdf#"))
	assert.ErrorIs(t, err, ErrInvalidNamespaceURI)
}

func TestClear(t *testing.T) {
	doc := buildDesign(t)
	require.NotZero(t, doc.Len())
	doc.Clear()
	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, doc.ListComponentDefinitions())
	assert.Empty(t, doc.ListGenericTopLevels())
}

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{ErrDuplicateIdentity, ErrCodeDuplicateIdentity},
		{&IdentityError{Kind: "Sequence", Identity: "s", Err: ErrUndefinedReference}, ErrCodeUndefinedReference},
		{&ReferenceError{Identity: "x", Referrer: "y", Field: "definition"}, ErrCodeDanglingReference},
		{accessError(errors.New("bad")), ErrCodeInvalidAccessType},
		{ErrInvalidFieldType, ErrCodeInvalidFieldType},
		{&rdf.ParseError{Format: "rdfxml", Err: errors.New("boom")}, ErrCodeSyntax},
		{rdf.ErrUnsupportedFormat, ErrCodeSyntax},
		{errors.New("other"), ErrCodeUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Code(tc.err), "%v", tc.err)
	}
}
