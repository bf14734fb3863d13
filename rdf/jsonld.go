package rdf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

const xsdString = "http://www.w3.org/2001/XMLSchema#string"

// ReadJSONLD converts a JSON-LD document into a Graph using json-gold.
// Only the default graph is kept. Remote contexts are not fetched unless
// the document is already expanded or uses inline contexts.
func ReadJSONLD(ctx context.Context, r io.Reader, opts ...Option) (*Graph, error) {
	options := buildOptions(append(opts, OptContext(ctx)))
	if err := checkContext(options.Context); err != nil {
		return nil, err
	}

	var input interface{}
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, wrapParseError("jsonld", "", -1, err)
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions(options.BaseIRI)
	result, err := proc.ToRDF(input, goldOpts)
	if err != nil {
		return nil, wrapParseError("jsonld", "", -1, err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, wrapParseError("jsonld", "", -1, fmt.Errorf("unexpected ToRDF result %T", result))
	}

	g := NewGraph()
	if ctxMap, ok := jsonLDContext(input); ok {
		for prefix, value := range ctxMap {
			if ns, ok := value.(string); ok && IsNCName(prefix) {
				g.DeclareNamespace(prefix, ns)
			}
		}
	}

	for _, quad := range dataset.Graphs["@default"] {
		if quad == nil {
			continue
		}
		s, err := fromGoldNode(quad.Subject)
		if err != nil {
			return nil, err
		}
		p, err := fromGoldNode(quad.Predicate)
		if err != nil {
			return nil, err
		}
		o, err := fromGoldNode(quad.Object)
		if err != nil {
			return nil, err
		}
		pred, ok := p.(IRI)
		if !ok {
			continue
		}
		if options.MaxTriples > 0 && int64(g.Len()) >= options.MaxTriples {
			return nil, wrapParseError("jsonld", "", -1, ErrTripleLimitExceeded)
		}
		g.Add(Triple{S: s, P: pred, O: o})
	}
	return g, nil
}

// WriteJSONLD writes g as compacted JSON-LD. The graph's declared namespaces
// become the @context, so predicates and types print as prefixed names.
func WriteJSONLD(ctx context.Context, w io.Writer, g *Graph) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	dataset := ld.NewRDFDataset()
	quads := make([]*ld.Quad, 0, g.Len())
	for _, t := range g.Triples() {
		quads = append(quads, &ld.Quad{
			Subject:   toGoldNode(t.S),
			Predicate: ld.NewIRI(t.P.Value),
			Object:    toGoldNode(t.O),
		})
	}
	dataset.Graphs["@default"] = quads

	serializer := &ld.NQuadRDFSerializer{}
	serialized, err := serializer.Serialize(dataset)
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}
	nquads, ok := serialized.(string)
	if !ok {
		return fmt.Errorf("jsonld: unexpected N-Quads result %T", serialized)
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	expanded, err := proc.FromRDF(nquads, opts)
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}

	ldContext := map[string]interface{}{}
	for _, prefix := range g.NamespacePrefixes() {
		if prefix == "" {
			continue
		}
		ldContext[prefix] = g.namespaces[prefix]
	}
	compactOpts := ld.NewJsonLdOptions("")
	compacted, err := proc.Compact(expanded, map[string]interface{}{"@context": ldContext}, compactOpts)
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(compacted)
}

func jsonLDContext(input interface{}) (map[string]interface{}, bool) {
	doc, ok := input.(map[string]interface{})
	if !ok {
		return nil, false
	}
	ctxMap, ok := doc["@context"].(map[string]interface{})
	return ctxMap, ok
}

func toGoldNode(term Term) ld.Node {
	switch v := term.(type) {
	case IRI:
		return ld.NewIRI(v.Value)
	case BlankNode:
		return ld.NewBlankNode("_:" + v.ID)
	case Literal:
		datatype := v.Datatype.Value
		if datatype == "" && v.Lang == "" {
			datatype = xsdString
		}
		if v.Lang != "" {
			datatype = RDFNamespace + "langString"
		}
		return ld.NewLiteral(v.Lexical, datatype, v.Lang)
	default:
		return nil
	}
}

func fromGoldNode(node ld.Node) (Term, error) {
	switch v := node.(type) {
	case *ld.IRI:
		return IRI{Value: v.Value}, nil
	case ld.IRI:
		return IRI{Value: v.Value}, nil
	case *ld.BlankNode:
		return BlankNode{ID: trimBlankPrefix(v.Attribute)}, nil
	case ld.BlankNode:
		return BlankNode{ID: trimBlankPrefix(v.Attribute)}, nil
	case *ld.Literal:
		return goldLiteral(v.Value, v.Datatype, v.Language), nil
	case ld.Literal:
		return goldLiteral(v.Value, v.Datatype, v.Language), nil
	default:
		return nil, wrapParseError("jsonld", "", -1, fmt.Errorf("unexpected node %T", node))
	}
}

func goldLiteral(value, datatype, lang string) Literal {
	lit := Literal{Lexical: value, Lang: lang}
	if lang == "" && datatype != "" && datatype != xsdString {
		lit.Datatype = IRI{Value: datatype}
	}
	return lit
}

func trimBlankPrefix(id string) string {
	if len(id) > 2 && id[:2] == "_:" {
		return id[2:]
	}
	return id
}
