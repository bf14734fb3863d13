package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	rdfXMLNS = RDFNamespace
	xmlNS    = "http://www.w3.org/XML/1998/namespace"
)

// rdfxmlDecoder turns an RDF/XML document into triples. Each top-level node
// element is decoded in one go, recursing into nested node elements, and its
// triples are queued for Next.
type rdfxmlDecoder struct {
	dec     *xml.Decoder
	opts    Options
	queue   []Triple
	emitted int64
	err     error
	depth   int
	bnodes  *blankNodeGenerator

	baseURI    string
	namespaces map[string]string
	nsOrder    []string
	topLevel   []Term
}

func newRDFXMLDecoder(r io.Reader, opts Options) *rdfxmlDecoder {
	return &rdfxmlDecoder{
		dec:        xml.NewDecoder(r),
		opts:       opts,
		bnodes:     newBlankNodeGenerator(),
		baseURI:    opts.BaseIRI,
		namespaces: map[string]string{},
	}
}

func (d *rdfxmlDecoder) Next() (Triple, error) {
	for {
		if len(d.queue) > 0 {
			next := d.queue[0]
			d.queue = d.queue[1:]
			return next, nil
		}
		if d.err != nil {
			return Triple{}, d.err
		}
		if err := checkContext(d.opts.Context); err != nil {
			d.err = err
			return Triple{}, err
		}
		tok, err := d.dec.Token()
		if err != nil {
			if err == io.EOF {
				return Triple{}, io.EOF
			}
			d.err = d.wrapError("", err)
			return Triple{}, d.err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		d.handleNamespaceDeclarations(start.Attr)
		if base := attrValue(start.Attr, xmlNS, "base"); base != "" {
			d.baseURI = base
		}
		if start.Name.Space == rdfXMLNS && start.Name.Local == "RDF" {
			continue
		}
		subject, err := d.readNodeElement(start)
		if err != nil {
			d.queue = nil
			d.err = err
			return Triple{}, err
		}
		d.topLevel = append(d.topLevel, subject)
	}
}

func (d *rdfxmlDecoder) Err() error { return d.err }

func (d *rdfxmlDecoder) Close() error { return nil }

// declaredNamespaces returns the prefixes declared so far, in declaration order.
func (d *rdfxmlDecoder) declaredNamespaces() ([]string, map[string]string) {
	return d.nsOrder, d.namespaces
}

// handleNamespaceDeclarations records xmlns attributes. encoding/xml reports
// xmlns:p as {Space: "xmlns", Local: "p"} and a default namespace as
// {Space: "", Local: "xmlns"}.
func (d *rdfxmlDecoder) handleNamespaceDeclarations(attrs []xml.Attr) {
	for _, attr := range attrs {
		var prefix string
		switch {
		case attr.Name.Space == "xmlns":
			prefix = attr.Name.Local
		case attr.Name.Space == "" && strings.HasPrefix(attr.Name.Local, "xmlns:"):
			prefix = strings.TrimPrefix(attr.Name.Local, "xmlns:")
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			prefix = ""
		default:
			continue
		}
		if _, ok := d.namespaces[prefix]; !ok {
			d.nsOrder = append(d.nsOrder, prefix)
		}
		d.namespaces[prefix] = attr.Value
	}
}

// readNodeElement decodes a node element whose start tag was just read and
// returns its subject.
func (d *rdfxmlDecoder) readNodeElement(el xml.StartElement) (Term, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	subject := d.subjectFromNode(el)
	if el.Name.Space != rdfXMLNS || el.Name.Local != "Description" {
		if err := d.emit(Triple{S: subject, P: RDFType, O: IRI{Value: el.Name.Space + el.Name.Local}}); err != nil {
			return nil, err
		}
	}
	if err := d.readPropertyAttributes(subject, el.Attr); err != nil {
		return nil, err
	}
	if err := d.readPropertyElements(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (d *rdfxmlDecoder) readPropertyElements(subject Term) error {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return d.wrapError("", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			d.handleNamespaceDeclarations(t.Attr)
			if err := d.readPropertyElement(subject, t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// readPropertyElement emits the triple for a single property element.
func (d *rdfxmlDecoder) readPropertyElement(subject Term, el xml.StartElement) error {
	pred := IRI{Value: el.Name.Space + el.Name.Local}
	if el.Name.Space == "" {
		return d.wrapError(el.Name.Local, fmt.Errorf("property element %q has no namespace", el.Name.Local))
	}

	resource := attrValue(el.Attr, rdfXMLNS, "resource")
	nodeID := attrValue(el.Attr, rdfXMLNS, "nodeID")
	parseType := attrValue(el.Attr, rdfXMLNS, "parseType")
	if resource != "" && nodeID != "" {
		return d.wrapError(pred.Value, fmt.Errorf("rdf:resource and rdf:nodeID are mutually exclusive"))
	}

	switch {
	case resource != "":
		if err := d.emit(Triple{S: subject, P: pred, O: IRI{Value: d.resolve(resource)}}); err != nil {
			return err
		}
		return d.consumeElement()
	case nodeID != "":
		if err := d.emit(Triple{S: subject, P: pred, O: BlankNode{ID: nodeID}}); err != nil {
			return err
		}
		return d.consumeElement()
	case parseType == "Resource":
		object := d.bnodes.next()
		if err := d.emit(Triple{S: subject, P: pred, O: object}); err != nil {
			return err
		}
		if err := d.enter(); err != nil {
			return err
		}
		defer d.leave()
		return d.readPropertyElements(object)
	}

	var content strings.Builder
	var object Term
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return d.wrapError(pred.Value, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if object == nil {
				content.Write(t)
			}
		case xml.StartElement:
			if object != nil {
				return d.wrapError(pred.Value, fmt.Errorf("property element %s holds more than one node element", pred.Value))
			}
			d.handleNamespaceDeclarations(t.Attr)
			// Emit the linking triple before the nested node's own triples
			// so a subject's statements stay in document order.
			placeholder := len(d.queue)
			d.queue = append(d.queue, Triple{})
			nested, err := d.readNodeElement(t)
			if err != nil {
				return err
			}
			d.queue[placeholder] = Triple{S: subject, P: pred, O: nested}
			object = nested
		case xml.EndElement:
			if object != nil {
				return nil
			}
			lit := Literal{Lexical: content.String()}
			if dt := attrValue(el.Attr, rdfXMLNS, "datatype"); dt != "" {
				lit.Datatype = IRI{Value: d.resolve(dt)}
			} else if lang := attrValue(el.Attr, xmlNS, "lang"); lang != "" {
				lit.Lang = lang
			}
			return d.emit(Triple{S: subject, P: pred, O: lit})
		}
	}
}

// readPropertyAttributes emits literal triples for non-syntax attributes on
// a node element.
func (d *rdfxmlDecoder) readPropertyAttributes(subject Term, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Space == "" || attr.Name.Space == "xmlns" || attr.Name.Space == xmlNS {
			continue
		}
		if attr.Name.Space == rdfXMLNS {
			switch attr.Name.Local {
			case "about", "ID", "nodeID", "type":
				if attr.Name.Local == "type" {
					if err := d.emit(Triple{S: subject, P: RDFType, O: IRI{Value: d.resolve(attr.Value)}}); err != nil {
						return err
					}
				}
				continue
			}
		}
		pred := IRI{Value: attr.Name.Space + attr.Name.Local}
		if err := d.emit(Triple{S: subject, P: pred, O: Literal{Lexical: attr.Value}}); err != nil {
			return err
		}
	}
	return nil
}

func (d *rdfxmlDecoder) subjectFromNode(el xml.StartElement) Term {
	if about := attrValue(el.Attr, rdfXMLNS, "about"); about != "" {
		return IRI{Value: d.resolve(about)}
	}
	if id := attrValue(el.Attr, rdfXMLNS, "ID"); id != "" {
		return IRI{Value: d.resolve("#" + id)}
	}
	if nodeID := attrValue(el.Attr, rdfXMLNS, "nodeID"); nodeID != "" {
		return BlankNode{ID: nodeID}
	}
	return d.bnodes.next()
}

func (d *rdfxmlDecoder) resolve(iri string) string {
	if d.baseURI == "" {
		return iri
	}
	return ResolveIRI(d.baseURI, iri)
}

func (d *rdfxmlDecoder) emit(t Triple) error {
	if d.opts.MaxTriples > 0 && d.emitted >= d.opts.MaxTriples {
		return d.wrapError("", ErrTripleLimitExceeded)
	}
	d.emitted++
	d.queue = append(d.queue, t)
	return nil
}

func (d *rdfxmlDecoder) enter() error {
	d.depth++
	if d.opts.MaxDepth > 0 && d.depth > d.opts.MaxDepth {
		return d.wrapError("", ErrDepthExceeded)
	}
	return nil
}

func (d *rdfxmlDecoder) leave() { d.depth-- }

func (d *rdfxmlDecoder) consumeElement() error {
	depth := 0
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return d.wrapError("", err)
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

func (d *rdfxmlDecoder) wrapError(statement string, err error) error {
	return wrapParseError("rdfxml", statement, d.dec.InputOffset(), err)
}

func attrValue(attrs []xml.Attr, space, local string) string {
	for _, attr := range attrs {
		if attr.Name.Space == space && attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// blankNodeGenerator hands out b1, b2, ... for nodes without an identifier.
type blankNodeGenerator struct {
	counter int
}

func newBlankNodeGenerator() *blankNodeGenerator {
	return &blankNodeGenerator{}
}

func (g *blankNodeGenerator) next() BlankNode {
	g.counter++
	return BlankNode{ID: fmt.Sprintf("b%d", g.counter)}
}
