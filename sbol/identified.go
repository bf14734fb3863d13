package sbol

// Kind tells top-level entities from nested ones.
type Kind uint8

const (
	// KindNested entities are owned by a parent and never registered on their own.
	KindNested Kind = iota
	// KindTopLevel entities live in a Document registry.
	KindTopLevel
)

func (k Kind) String() string {
	if k == KindTopLevel {
		return "TopLevel"
	}
	return "Nested"
}

// Identified holds the fields every SBOL entity shares. It is embedded by
// value in each entity type.
type Identified struct {
	identity  string
	displayID string
	kind      Kind

	Name           string
	Description    string
	Version        string
	WasDerivedFrom string
	Annotations    []Annotation
}

// Option sets optional Identified fields at construction.
type Option func(*Identified)

// OptDisplayID overrides the display ID derived from the identity.
func OptDisplayID(id string) Option {
	return func(i *Identified) {
		i.displayID = id
	}
}

// OptName sets the human-readable name (dcterms:title).
func OptName(name string) Option {
	return func(i *Identified) {
		i.Name = name
	}
}

// OptDescription sets dcterms:description.
func OptDescription(desc string) Option {
	return func(i *Identified) {
		i.Description = desc
	}
}

// OptVersion sets the version used in the persistent identity.
func OptVersion(version string) Option {
	return func(i *Identified) {
		i.Version = version
	}
}

// OptWasDerivedFrom sets the prov:wasDerivedFrom URI.
func OptWasDerivedFrom(uri string) Option {
	return func(i *Identified) {
		i.WasDerivedFrom = uri
	}
}

// OptAnnotations attaches extension annotations.
func OptAnnotations(annotations ...Annotation) Option {
	return func(i *Identified) {
		i.Annotations = append([]Annotation(nil), annotations...)
	}
}

func newIdentified(identity string, kind Kind, opts []Option) Identified {
	id := Identified{identity: identity, kind: kind}
	for _, opt := range opts {
		opt(&id)
	}
	if id.displayID == "" {
		id.displayID = DeriveDisplayID(identity)
	}
	return id
}

// Identity returns the identity the entity was created with: a local token
// or an absolute URI.
func (i *Identified) Identity() string { return i.identity }

// DisplayID returns the display ID.
func (i *Identified) DisplayID() string { return i.displayID }

// Kind reports whether the entity is top level or nested.
func (i *Identified) Kind() Kind { return i.kind }

// URI resolves the identity against namespace.
func (i *Identified) URI(namespace string) string {
	return Resolve(i.identity, namespace)
}

// PersistentIdentity returns the persistent identity under namespace.
func (i *Identified) PersistentIdentity(namespace string) string {
	return PersistentIdentity(i.identity, i.displayID, i.Version, namespace)
}

// AddAnnotation appends an extension annotation.
func (i *Identified) AddAnnotation(a Annotation) {
	i.Annotations = append(i.Annotations, a)
}

func (i *Identified) core() *Identified { return i }

// Entity is implemented by every SBOL entity.
type Entity interface {
	Identity() string
	DisplayID() string
	Kind() Kind
	URI(namespace string) string
	core() *Identified
}

// TopLevel is implemented by entities stored in Document registries.
type TopLevel interface {
	Entity
	isTopLevel()
}
