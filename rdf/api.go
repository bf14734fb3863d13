package rdf

import (
	"context"
	"fmt"
	"io"
)

// TripleDecoder streams RDF triples from an input.
type TripleDecoder interface {
	Next() (Triple, error)
	Err() error
	Close() error
}

// NewTripleDecoder creates a pull-style decoder for the given format.
// Only RDF/XML streams; JSON-LD is read as a whole through ReadGraph.
func NewTripleDecoder(r io.Reader, format Format, opts ...Option) (TripleDecoder, error) {
	options := buildOptions(opts)
	switch format {
	case FormatRDFXML:
		return newRDFXMLDecoder(r, options), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadGraph parses the whole input into a Graph. If format is FormatAuto,
// the format is detected from the first non-space byte.
//
// For RDF/XML the graph also records namespace declarations and the nodes
// written directly under rdf:RDF.
func ReadGraph(ctx context.Context, r io.Reader, format Format, opts ...Option) (*Graph, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = append(opts, OptContext(ctx))
	if format == FormatAuto {
		detected, reader, ok := DetectFormat(r)
		if !ok {
			return nil, ErrUnsupportedFormat
		}
		format, r = detected, reader
	}

	switch format {
	case FormatRDFXML:
		return readRDFXMLGraph(r, buildOptions(opts))
	case FormatJSONLD:
		return ReadJSONLD(ctx, r, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func readRDFXMLGraph(r io.Reader, opts Options) (*Graph, error) {
	dec := newRDFXMLDecoder(r, opts)
	defer dec.Close()

	g := NewGraph()
	for {
		triple, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		g.Add(triple)
	}

	order, namespaces := dec.declaredNamespaces()
	for _, prefix := range order {
		g.DeclareNamespace(prefix, namespaces[prefix])
	}
	for _, s := range dec.topLevel {
		g.MarkTopLevel(s)
	}
	return g, nil
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
