// Package rdf provides the small RDF layer the SBOL reader and writer sit on.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// It covers three things:
//   - Decode: NewTripleDecoder() returns a pull-style RDF/XML decoder.
//   - Graph: ReadGraph() loads RDF/XML or JSON-LD into an ordered, indexed Graph.
//   - JSON-LD: ReadJSONLD() and WriteJSONLD() bridge a Graph through json-gold.
//
// A Graph decoded from RDF/XML keeps each subject's statements in document
// order, remembers the namespace prefixes the document declared, and records
// which node elements were written directly under rdf:RDF. Writers that need
// a stable output rely on all three.
//
// Example:
//
//	g, err := rdf.ReadGraph(ctx, f, rdf.FormatAuto, rdf.OptSafeLimits())
//	if err != nil {
//	    // handle error
//	}
//	for _, s := range g.SubjectsOfType(rdf.IRI{Value: "http://sbols.org/v2#Sequence"}) {
//	    v, _ := g.Value(s, rdf.IRI{Value: "http://sbols.org/v2#elements"})
//	    fmt.Println(s, v)
//	}
//
// Errors carry an ErrorCode; use Code(err) to classify them.
package rdf
