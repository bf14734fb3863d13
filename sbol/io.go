package sbol

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/geoknoesis/sbol-go/rdf"
)

// Read replaces the Document contents with the RDF/XML document read from r.
func (d *Document) Read(r io.Reader) error {
	return d.ReadFormat(context.Background(), r, rdf.FormatRDFXML)
}

// ReadFormat replaces the Document contents with the document read from r.
// format may be rdf.FormatRDFXML, rdf.FormatJSONLD or rdf.FormatAuto.
//
// On error the Document is left empty.
func (d *Document) ReadFormat(ctx context.Context, r io.Reader, format rdf.Format) error {
	d.Clear()
	g, err := rdf.ReadGraph(ctx, r, format, d.decodeOpts...)
	if err != nil {
		return fmt.Errorf("sbol: %w", err)
	}
	return d.LoadGraph(g)
}

// LoadGraph replaces the Document contents with the entities described by g.
// On error the Document is left empty.
func (d *Document) LoadGraph(g *rdf.Graph) error {
	d.Clear()
	if err := newReader(d, g).run(); err != nil {
		d.Clear()
		return fmt.Errorf("sbol: %w", err)
	}
	d.logger.Debug("read document", "triples", g.Len(), "entities", d.Len())
	return nil
}

// Write serializes the Document as RDF/XML.
func (d *Document) Write(w io.Writer) error {
	return d.WriteFormat(context.Background(), w, rdf.FormatRDFXML)
}

// WriteFormat serializes the Document as RDF/XML or JSON-LD. The JSON-LD
// form is produced from the same triples as the RDF/XML one.
func (d *Document) WriteFormat(ctx context.Context, w io.Writer, format rdf.Format) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	switch format {
	case rdf.FormatRDFXML:
		return d.writeRDFXML(w)
	case rdf.FormatJSONLD:
		var buf bytes.Buffer
		if err := d.writeRDFXML(&buf); err != nil {
			return err
		}
		g, err := rdf.ReadGraph(ctx, &buf, rdf.FormatRDFXML)
		if err != nil {
			return fmt.Errorf("sbol: %w", err)
		}
		if err := rdf.WriteJSONLD(ctx, w, g); err != nil {
			return fmt.Errorf("sbol: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("sbol: %w: %q", rdf.ErrUnsupportedFormat, format)
	}
}

func (d *Document) writeRDFXML(w io.Writer) error {
	doc, err := newWriter(d).document()
	if err != nil {
		return fmt.Errorf("sbol: write: %w", err)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("sbol: write: %w", err)
	}
	return nil
}
