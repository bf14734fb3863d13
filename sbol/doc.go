// Package sbol maps SBOL2 designs to and from RDF/XML.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// A Document holds one registry per top-level kind (Sequence,
// ComponentDefinition, Model, ModuleDefinition, Collection and
// GenericTopLevel). Nested entities such as Components, Locations and
// Participations belong to their parent and are reached through it.
//
// Identities are either local tokens, joined to the Document namespace, or
// absolute URIs used as-is. Every controlled field goes through the vocab
// package, so friendly names like "Promoter" become their term URI while
// any absolute URI is accepted unchanged.
//
// Writing is deterministic: the same Document always produces the same
// bytes, and writing a Document read from that output produces them again.
// Properties outside the SBOL vocabulary are kept as Annotations and
// written back.
//
// Example:
//
//	doc, err := sbol.NewDocument("http://example.org/sbol/")
//	if err != nil {
//	    // handle error
//	}
//	promoter, _ := sbol.NewComponentDefinition("pLac", nil, []string{"Promoter"})
//	if err := doc.AddComponentDefinition(promoter); err != nil {
//	    // handle error
//	}
//	err = doc.Write(os.Stdout)
//
// Errors carry an ErrorCode; use Code(err) to classify them.
package sbol
