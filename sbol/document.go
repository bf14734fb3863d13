package sbol

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/geoknoesis/sbol-go/rdf"
)

// Document holds an SBOL design: one registry per top-level kind, keyed by
// the entity's URI resolved against the document namespace.
//
// A Document is not safe for concurrent use.
type Document struct {
	namespace  string
	logger     *slog.Logger
	decodeOpts []rdf.Option

	baseNamespaces map[string]string
	namespaces     map[string]string

	sequences            *registry[*Sequence]
	componentDefinitions *registry[*ComponentDefinition]
	models               *registry[*Model]
	moduleDefinitions    *registry[*ModuleDefinition]
	collections          *registry[*Collection]
	genericTopLevels     *registry[*GenericTopLevel]

	// Read-time indices.
	entities             map[string]TopLevel
	functionalComponents map[string]*FunctionalComponent
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) DocumentOption {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithNamespace declares an extra prefix. It survives Clear.
func WithNamespace(prefix, uri string) DocumentOption {
	return func(d *Document) {
		d.baseNamespaces[prefix] = uri
	}
}

// WithDecodeOptions passes options to the RDF decoder on every read.
func WithDecodeOptions(opts ...rdf.Option) DocumentOption {
	return func(d *Document) {
		d.decodeOpts = append(d.decodeOpts, opts...)
	}
}

// NewDocument creates an empty Document. namespace must be an absolute URL;
// relative identities are joined to it.
func NewDocument(namespace string, opts ...DocumentOption) (*Document, error) {
	if !rdf.IsAbsoluteURI(namespace) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNamespaceURI, namespace)
	}
	d := &Document{
		namespace:            namespace,
		logger:               slog.New(slog.NewTextHandler(io.Discard, nil)),
		baseNamespaces:       map[string]string{},
		sequences:            newRegistry[*Sequence]("Sequence"),
		componentDefinitions: newRegistry[*ComponentDefinition]("ComponentDefinition"),
		models:               newRegistry[*Model]("Model"),
		moduleDefinitions:    newRegistry[*ModuleDefinition]("ModuleDefinition"),
		collections:          newRegistry[*Collection]("Collection"),
		genericTopLevels:     newRegistry[*GenericTopLevel]("GenericTopLevel"),
	}
	for _, opt := range opts {
		opt(d)
	}
	for prefix, uri := range d.baseNamespaces {
		if err := checkNamespace(prefix, uri); err != nil {
			return nil, err
		}
	}
	d.Clear()
	return d, nil
}

// Namespace returns the document namespace.
func (d *Document) Namespace() string { return d.namespace }

func (d *Document) String() string {
	return "SBOL Document {" + d.namespace + "}"
}

// URI resolves an identity against the document namespace.
func (d *Document) URI(identity string) string { return Resolve(identity, d.namespace) }

// AddNamespace declares prefix for uri on written documents. The fixed
// prefixes sbol, prov, rdf and dcterms cannot be rebound.
func (d *Document) AddNamespace(prefix, uri string) error {
	if err := checkNamespace(prefix, uri); err != nil {
		return err
	}
	d.namespaces[prefix] = uri
	return nil
}

// Namespaces returns every active prefix, fixed ones included.
func (d *Document) Namespaces() map[string]string {
	out := make(map[string]string, len(fixedNamespaces)+len(d.namespaces))
	for p, uri := range d.namespaces {
		out[p] = uri
	}
	for p, uri := range fixedNamespaces {
		out[p] = uri
	}
	return out
}

func checkNamespace(prefix, uri string) error {
	if !rdf.IsNCName(prefix) {
		return fmt.Errorf("%w: prefix %q is not an XML name", ErrInvalidNamespaceURI, prefix)
	}
	if fixed, ok := fixedNamespaces[prefix]; ok && fixed != uri {
		return fmt.Errorf("%w: prefix %q is reserved for %s", ErrInvalidNamespaceURI, prefix, fixed)
	}
	if !rdf.IsAbsoluteURI(uri) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespaceURI, uri)
	}
	return nil
}

// normalizeNamespace makes sure a namespace read from a file ends in a
// separator so that names can be split off it.
func normalizeNamespace(uri string) string {
	if strings.HasSuffix(uri, "#") || strings.HasSuffix(uri, "/") || strings.HasSuffix(uri, ":") {
		return uri
	}
	return uri + "/"
}

// prefixFor returns the prefix bound to namespace, if any.
func (d *Document) prefixFor(namespace string) (string, bool) {
	var found []string
	for p, uri := range d.Namespaces() {
		if uri == namespace {
			found = append(found, p)
		}
	}
	if len(found) == 0 {
		return "", false
	}
	sort.Strings(found)
	return found[0], true
}

// bindGeneratedPrefix binds namespace to the first free ns<N> prefix.
func (d *Document) bindGeneratedPrefix(namespace string) string {
	active := d.Namespaces()
	for n := 0; ; n++ {
		p := fmt.Sprintf("ns%d", n)
		if _, taken := active[p]; !taken {
			d.namespaces[p] = namespace
			d.logger.Debug("generated namespace prefix", "prefix", p, "namespace", namespace)
			return p
		}
	}
}

// Clear empties every registry and read-time index and resets the
// namespace table to the prefixes given at construction.
func (d *Document) Clear() {
	d.sequences.clear()
	d.componentDefinitions.clear()
	d.models.clear()
	d.moduleDefinitions.clear()
	d.collections.clear()
	d.genericTopLevels.clear()
	d.entities = make(map[string]TopLevel)
	d.functionalComponents = make(map[string]*FunctionalComponent)
	d.namespaces = make(map[string]string, len(d.baseNamespaces))
	for p, uri := range d.baseNamespaces {
		d.namespaces[p] = uri
	}
}

// Len returns the number of top-level entities.
func (d *Document) Len() int {
	return d.sequences.len() + d.componentDefinitions.len() + d.models.len() +
		d.moduleDefinitions.len() + d.collections.len() + d.genericTopLevels.len()
}

// AddSequence registers s.
func (d *Document) AddSequence(s *Sequence) error {
	return d.sequences.add(d.URI(s.Identity()), s)
}

// RemoveSequence removes the Sequence with identity, if present.
func (d *Document) RemoveSequence(identity string) { d.sequences.remove(d.URI(identity)) }

// GetSequence looks up a Sequence by local identity or URI.
func (d *Document) GetSequence(identity string) (*Sequence, bool) {
	return d.sequences.get(d.URI(identity))
}

// ListSequences returns all Sequences ordered by URI.
func (d *Document) ListSequences() []*Sequence { return d.sequences.list() }

// AddComponentDefinition registers cd.
func (d *Document) AddComponentDefinition(cd *ComponentDefinition) error {
	return d.componentDefinitions.add(d.URI(cd.Identity()), cd)
}

// RemoveComponentDefinition removes the ComponentDefinition with identity, if present.
func (d *Document) RemoveComponentDefinition(identity string) {
	d.componentDefinitions.remove(d.URI(identity))
}

// GetComponentDefinition looks up a ComponentDefinition by local identity or URI.
func (d *Document) GetComponentDefinition(identity string) (*ComponentDefinition, bool) {
	return d.componentDefinitions.get(d.URI(identity))
}

// ListComponentDefinitions returns all ComponentDefinitions ordered by URI.
func (d *Document) ListComponentDefinitions() []*ComponentDefinition {
	return d.componentDefinitions.list()
}

// AddModel registers m.
func (d *Document) AddModel(m *Model) error {
	return d.models.add(d.URI(m.Identity()), m)
}

// RemoveModel removes the Model with identity, if present.
func (d *Document) RemoveModel(identity string) { d.models.remove(d.URI(identity)) }

// GetModel looks up a Model by local identity or URI.
func (d *Document) GetModel(identity string) (*Model, bool) {
	return d.models.get(d.URI(identity))
}

// ListModels returns all Models ordered by URI.
func (d *Document) ListModels() []*Model { return d.models.list() }

// AddModuleDefinition registers md.
func (d *Document) AddModuleDefinition(md *ModuleDefinition) error {
	return d.moduleDefinitions.add(d.URI(md.Identity()), md)
}

// RemoveModuleDefinition removes the ModuleDefinition with identity, if present.
func (d *Document) RemoveModuleDefinition(identity string) {
	d.moduleDefinitions.remove(d.URI(identity))
}

// GetModuleDefinition looks up a ModuleDefinition by local identity or URI.
func (d *Document) GetModuleDefinition(identity string) (*ModuleDefinition, bool) {
	return d.moduleDefinitions.get(d.URI(identity))
}

// ListModuleDefinitions returns all ModuleDefinitions ordered by URI.
func (d *Document) ListModuleDefinitions() []*ModuleDefinition { return d.moduleDefinitions.list() }

// AddCollection registers c.
func (d *Document) AddCollection(c *Collection) error {
	return d.collections.add(d.URI(c.Identity()), c)
}

// RemoveCollection removes the Collection with identity, if present.
func (d *Document) RemoveCollection(identity string) { d.collections.remove(d.URI(identity)) }

// GetCollection looks up a Collection by local identity or URI.
func (d *Document) GetCollection(identity string) (*Collection, bool) {
	return d.collections.get(d.URI(identity))
}

// ListCollections returns all Collections ordered by URI.
func (d *Document) ListCollections() []*Collection { return d.collections.list() }

// AddGenericTopLevel registers g.
func (d *Document) AddGenericTopLevel(g *GenericTopLevel) error {
	return d.genericTopLevels.add(d.URI(g.Identity()), g)
}

// RemoveGenericTopLevel removes the GenericTopLevel with identity, if present.
func (d *Document) RemoveGenericTopLevel(identity string) {
	d.genericTopLevels.remove(d.URI(identity))
}

// GetGenericTopLevel looks up a GenericTopLevel by local identity or URI.
func (d *Document) GetGenericTopLevel(identity string) (*GenericTopLevel, bool) {
	return d.genericTopLevels.get(d.URI(identity))
}

// ListGenericTopLevels returns all GenericTopLevels ordered by URI.
func (d *Document) ListGenericTopLevels() []*GenericTopLevel { return d.genericTopLevels.list() }
