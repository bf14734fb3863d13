package sbol

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"

	"github.com/geoknoesis/sbol-go/rdf"
)

// writer renders a Document as an RDF/XML element tree. Output depends only
// on the Document contents: groups and nested lists are sorted by URI.
type writer struct {
	d  *Document
	ns string

	// prefix table for this write; starts from the Document's and grows
	// when an annotation uses an unbound namespace.
	namespaces map[string]string
}

func newWriter(d *Document) *writer {
	return &writer{d: d, ns: d.namespace, namespaces: d.Namespaces()}
}

func (w *writer) document() (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("rdf:RDF")

	for _, s := range w.d.ListSequences() {
		if err := w.sequence(root, s); err != nil {
			return nil, err
		}
	}
	for _, cd := range w.d.ListComponentDefinitions() {
		if err := w.componentDefinition(root, cd); err != nil {
			return nil, err
		}
	}
	for _, m := range w.d.ListModels() {
		if err := w.model(root, m); err != nil {
			return nil, err
		}
	}
	for _, md := range w.d.ListModuleDefinitions() {
		if err := w.moduleDefinition(root, md); err != nil {
			return nil, err
		}
	}
	for _, c := range w.d.ListCollections() {
		if err := w.collection(root, c); err != nil {
			return nil, err
		}
	}
	for _, g := range w.d.ListGenericTopLevels() {
		if err := w.genericTopLevel(root, g); err != nil {
			return nil, err
		}
	}

	prefixes := make([]string, 0, len(w.namespaces))
	for p := range w.namespaces {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		root.CreateAttr("xmlns:"+p, w.namespaces[p])
	}

	doc.Indent(2)
	w.d.logger.Debug("wrote document", "entities", w.d.Len(), "namespaces", len(prefixes))
	return doc, nil
}

func (w *writer) uri(e Entity) string { return e.URI(w.ns) }

func (w *writer) node(parent *etree.Element, tag string, e Entity) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("rdf:about", w.uri(e))
	return el
}

// child wraps a nested entity in its owning property element.
func (w *writer) child(parent *etree.Element, property, tag string, e Entity) *etree.Element {
	return w.node(parent.CreateElement(property), tag, e)
}

func resource(parent *etree.Element, tag, uri string) {
	parent.CreateElement(tag).CreateAttr("rdf:resource", uri)
}

func resources(parent *etree.Element, tag string, uris []string) {
	for _, uri := range uris {
		resource(parent, tag, uri)
	}
}

func text(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func (w *writer) identified(el *etree.Element, id *Identified) error {
	resource(el, "sbol:persistentIdentity", id.PersistentIdentity(w.ns))
	if id.Name != "" {
		text(el, "dcterms:title", id.Name)
	}
	text(el, "sbol:displayId", id.DisplayID())
	if id.Version != "" {
		text(el, "sbol:version", id.Version)
	}
	if id.WasDerivedFrom != "" {
		resource(el, "prov:wasDerivedFrom", id.WasDerivedFrom)
	}
	if id.Description != "" {
		text(el, "dcterms:description", id.Description)
	}
	return w.annotations(el, id.Annotations)
}

func (w *writer) annotations(el *etree.Element, list []Annotation) error {
	for _, a := range list {
		tag, err := w.tag(a.Name)
		if err != nil {
			return err
		}
		prop := el.CreateElement(tag)
		v := a.Value
		switch {
		case v.Nested != nil:
			if err := w.nested(prop, v.Nested); err != nil {
				return err
			}
		case v.URI != "":
			prop.CreateAttr("rdf:resource", v.URI)
		default:
			if v.Datatype != "" {
				prop.CreateAttr("rdf:datatype", v.Datatype)
			} else if v.Lang != "" {
				prop.CreateAttr("xml:lang", v.Lang)
			}
			prop.SetText(v.Literal)
		}
	}
	return nil
}

func (w *writer) nested(prop *etree.Element, n *NestedAnnotation) error {
	name := n.Name
	if name.LocalName == "" {
		name = rdfDescription
	}
	// An untyped, empty resource says nothing beyond its URI.
	if n.URI != "" && len(n.Annotations) == 0 && name.IRI() == rdfDescription.IRI() {
		prop.CreateAttr("rdf:resource", n.URI)
		return nil
	}
	tag, err := w.tag(name)
	if err != nil {
		return err
	}
	el := prop.CreateElement(tag)
	if n.URI != "" {
		el.CreateAttr("rdf:about", n.URI)
	}
	return w.annotations(el, n.Annotations)
}

// tag returns the prefixed element name for q, binding a prefix when its
// namespace has none yet.
func (w *writer) tag(q QName) (string, error) {
	if q.Namespace == "" || !rdf.IsNCName(q.LocalName) {
		return "", fmt.Errorf("%w: %q is not a qualified XML name", ErrInvalidFieldType, q.String())
	}
	if q.Prefix != "" && rdf.IsNCName(q.Prefix) {
		uri, bound := w.namespaces[q.Prefix]
		if !bound {
			w.namespaces[q.Prefix] = q.Namespace
			return q.Prefix + ":" + q.LocalName, nil
		}
		if uri == q.Namespace {
			return q.Prefix + ":" + q.LocalName, nil
		}
	}

	var found []string
	for p, uri := range w.namespaces {
		if uri == q.Namespace {
			found = append(found, p)
		}
	}
	if len(found) > 0 {
		sort.Strings(found)
		return found[0] + ":" + q.LocalName, nil
	}
	for i := 0; ; i++ {
		p := fmt.Sprintf("ns%d", i)
		if _, taken := w.namespaces[p]; !taken {
			w.namespaces[p] = q.Namespace
			w.d.logger.Debug("generated namespace prefix", "prefix", p, "namespace", q.Namespace)
			return p + ":" + q.LocalName, nil
		}
	}
}

func (w *writer) sequence(root *etree.Element, s *Sequence) error {
	el := w.node(root, "sbol:Sequence", s)
	if err := w.identified(el, &s.Identified); err != nil {
		return err
	}
	text(el, "sbol:elements", s.Elements)
	resource(el, "sbol:encoding", s.Encoding())
	return nil
}

func (w *writer) componentDefinition(root *etree.Element, cd *ComponentDefinition) error {
	el := w.node(root, "sbol:ComponentDefinition", cd)
	if err := w.identified(el, &cd.Identified); err != nil {
		return err
	}
	resources(el, "sbol:role", cd.Roles())
	resources(el, "sbol:type", cd.Types())

	for _, c := range sortEntities(w.ns, cd.Components) {
		if err := w.component(el, c); err != nil {
			return err
		}
	}
	for _, sa := range sortEntities(w.ns, cd.SequenceAnnotations) {
		if err := w.sequenceAnnotation(el, sa); err != nil {
			return err
		}
	}
	for _, sc := range sortEntities(w.ns, cd.SequenceConstraints) {
		if err := w.sequenceConstraint(el, sc); err != nil {
			return err
		}
	}
	for _, s := range sortEntities(w.ns, cd.Sequences) {
		resource(el, "sbol:sequence", w.uri(s))
	}
	return nil
}

func (w *writer) component(parent *etree.Element, c *Component) error {
	el := w.child(parent, "sbol:component", "sbol:Component", c)
	if err := w.identified(el, &c.Identified); err != nil {
		return err
	}
	resource(el, "sbol:access", c.Access())
	if c.Definition != nil {
		resource(el, "sbol:definition", w.uri(c.Definition))
	}
	if err := w.mapsTos(el, c.MapsTos); err != nil {
		return err
	}
	resources(el, "sbol:role", c.Roles())
	if c.RoleIntegration() != "" {
		resource(el, "sbol:roleIntegration", c.RoleIntegration())
	}
	return nil
}

func (w *writer) mapsTos(parent *etree.Element, list []*MapsTo) error {
	for _, m := range sortEntities(w.ns, list) {
		el := w.child(parent, "sbol:mapsTo", "sbol:MapsTo", m)
		if err := w.identified(el, &m.Identified); err != nil {
			return err
		}
		if uri := w.instanceURI(m.Local); uri != "" {
			resource(el, "sbol:local", uri)
		}
		if uri := w.instanceURI(m.Remote); uri != "" {
			resource(el, "sbol:remote", uri)
		}
		resource(el, "sbol:refinement", m.Refinement())
	}
	return nil
}

func (w *writer) instanceURI(i Instance) string {
	if i == nil {
		return ""
	}
	return w.uri(i)
}

func (w *writer) sequenceAnnotation(parent *etree.Element, sa *SequenceAnnotation) error {
	el := w.child(parent, "sbol:sequenceAnnotation", "sbol:SequenceAnnotation", sa)
	if err := w.identified(el, &sa.Identified); err != nil {
		return err
	}
	if sa.Component != nil {
		resource(el, "sbol:component", w.uri(sa.Component))
	}
	resources(el, "sbol:role", sa.Roles())
	for _, loc := range sortEntities(w.ns, sa.Locations) {
		if err := w.location(el, loc); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) location(parent *etree.Element, loc Location) error {
	var tag string
	switch loc.(type) {
	case *Range:
		tag = "sbol:Range"
	case *Cut:
		tag = "sbol:Cut"
	default:
		tag = "sbol:GenericLocation"
	}
	el := w.child(parent, "sbol:location", tag, loc)
	if err := w.identified(el, &loc.location().Identified); err != nil {
		return err
	}
	if o := loc.Orientation(); o != "" {
		resource(el, "sbol:orientation", o)
	}
	switch l := loc.(type) {
	case *Range:
		text(el, "sbol:start", fmt.Sprint(l.Start))
		text(el, "sbol:end", fmt.Sprint(l.End))
	case *Cut:
		text(el, "sbol:at", fmt.Sprint(l.At))
	}
	return nil
}

func (w *writer) sequenceConstraint(parent *etree.Element, sc *SequenceConstraint) error {
	el := w.child(parent, "sbol:sequenceConstraint", "sbol:SequenceConstraint", sc)
	if err := w.identified(el, &sc.Identified); err != nil {
		return err
	}
	resource(el, "sbol:restriction", sc.Restriction())
	if sc.Subject != nil {
		resource(el, "sbol:subject", w.uri(sc.Subject))
	}
	if sc.Object != nil {
		resource(el, "sbol:object", w.uri(sc.Object))
	}
	return nil
}

func (w *writer) model(root *etree.Element, m *Model) error {
	el := w.node(root, "sbol:Model", m)
	if err := w.identified(el, &m.Identified); err != nil {
		return err
	}
	if m.Source != "" {
		resource(el, "sbol:source", m.Source)
	}
	resource(el, "sbol:language", m.Language())
	resource(el, "sbol:framework", m.Framework())
	return nil
}

func (w *writer) moduleDefinition(root *etree.Element, md *ModuleDefinition) error {
	el := w.node(root, "sbol:ModuleDefinition", md)
	if err := w.identified(el, &md.Identified); err != nil {
		return err
	}
	resources(el, "sbol:role", md.Roles())
	for _, m := range sortEntities(w.ns, md.Models) {
		resource(el, "sbol:model", w.uri(m))
	}
	for _, fc := range sortEntities(w.ns, md.FunctionalComponents) {
		if err := w.functionalComponent(el, fc); err != nil {
			return err
		}
	}
	for _, mod := range sortEntities(w.ns, md.Modules) {
		if err := w.module(el, mod); err != nil {
			return err
		}
	}
	for _, in := range sortEntities(w.ns, md.Interactions) {
		if err := w.interaction(el, in); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) functionalComponent(parent *etree.Element, fc *FunctionalComponent) error {
	el := w.child(parent, "sbol:functionalComponent", "sbol:FunctionalComponent", fc)
	if err := w.identified(el, &fc.Identified); err != nil {
		return err
	}
	resource(el, "sbol:access", fc.Access())
	if fc.Definition != nil {
		resource(el, "sbol:definition", w.uri(fc.Definition))
	}
	if err := w.mapsTos(el, fc.MapsTos); err != nil {
		return err
	}
	resource(el, "sbol:direction", fc.Direction())
	return nil
}

func (w *writer) module(parent *etree.Element, mod *Module) error {
	el := w.child(parent, "sbol:module", "sbol:Module", mod)
	if err := w.identified(el, &mod.Identified); err != nil {
		return err
	}
	if mod.Definition != nil {
		resource(el, "sbol:definition", w.uri(mod.Definition))
	}
	return w.mapsTos(el, mod.MapsTos)
}

func (w *writer) interaction(parent *etree.Element, in *Interaction) error {
	el := w.child(parent, "sbol:interaction", "sbol:Interaction", in)
	if err := w.identified(el, &in.Identified); err != nil {
		return err
	}
	resources(el, "sbol:type", in.Types())
	for _, p := range sortEntities(w.ns, in.Participations) {
		pel := w.child(el, "sbol:participation", "sbol:Participation", p)
		if err := w.identified(pel, &p.Identified); err != nil {
			return err
		}
		resources(pel, "sbol:role", p.Roles())
		if p.Participant != nil {
			resource(pel, "sbol:participant", w.uri(p.Participant))
		}
	}
	return nil
}

func (w *writer) collection(root *etree.Element, c *Collection) error {
	el := w.node(root, "sbol:Collection", c)
	if err := w.identified(el, &c.Identified); err != nil {
		return err
	}
	for _, m := range sortEntities(w.ns, c.Members) {
		resource(el, "sbol:member", w.uri(m))
	}
	return nil
}

func (w *writer) genericTopLevel(root *etree.Element, g *GenericTopLevel) error {
	name := g.RDFType
	if name.LocalName == "" {
		name = rdfDescription
	}
	tag, err := w.tag(name)
	if err != nil {
		return err
	}
	el := w.node(root, tag, g)
	return w.identified(el, &g.Identified)
}

// sortEntities returns a copy of list ordered by resolved URI.
func sortEntities[T Entity](namespace string, list []T) []T {
	out := append([]T(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].URI(namespace) < out[j].URI(namespace)
	})
	return out
}
