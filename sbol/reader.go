package sbol

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/geoknoesis/sbol-go/rdf"
)

var rdfDescription = QName{Namespace: NamespaceRDF, LocalName: "Description", Prefix: "rdf"}

// reader rebuilds a Document from a triple graph in a fixed series of
// passes. Each pass only resolves references to entities built by an
// earlier one, so every lookup miss is a dangling reference.
type reader struct {
	d *Document
	g *rdf.Graph

	// objects of containment or annotation predicates; only used when the
	// graph does not track top-level nodes itself.
	nested map[string]struct{}

	// all Components of all definitions, for Component mapsTo.
	components map[string]*Component

	cds []readNode[*ComponentDefinition]
	mds []readNode[*ModuleDefinition]
}

type readNode[T any] struct {
	subject rdf.Term
	entity  T
}

func newReader(d *Document, g *rdf.Graph) *reader {
	r := &reader{d: d, g: g, components: map[string]*Component{}}
	if !g.TracksTopLevel() {
		r.nested = map[string]struct{}{}
		for _, t := range g.Triples() {
			if _, ok := t.O.(rdf.Literal); ok {
				continue
			}
			_, contained := containmentPredicates[t.P.Value]
			_, known := knownPredicates[t.P.Value]
			if contained || !known {
				r.nested[t.O.String()] = struct{}{}
			}
		}
	}
	return r
}

func (r *reader) run() error {
	passes := []struct {
		name string
		fn   func() (int, error)
	}{
		{"namespaces", r.readNamespaces},
		{"sequences", r.readSequences},
		{"component definitions", r.readComponentDefinitions},
		{"component definition structure", r.readStructure},
		{"models", r.readModels},
		{"module definitions", r.readModuleDefinitions},
		{"modules", r.readModules},
		{"generic top levels", r.readGenericTopLevels},
		{"collections", r.readCollections},
	}
	for _, p := range passes {
		n, err := p.fn()
		if err != nil {
			return fmt.Errorf("read %s: %w", p.name, err)
		}
		r.d.logger.Debug("read pass", "pass", p.name, "count", n)
	}
	return nil
}

func (r *reader) readNamespaces() (int, error) {
	n := 0
	for prefix, uri := range r.g.Namespaces() {
		if prefix == "" || !rdf.IsNCName(prefix) {
			continue
		}
		if _, fixed := fixedNamespaces[prefix]; fixed {
			continue
		}
		if isFixedNamespace(uri) {
			continue
		}
		r.d.namespaces[prefix] = normalizeNamespace(uri)
		n++
	}
	return n, nil
}

func isFixedNamespace(uri string) bool {
	for _, fixed := range fixedNamespaces {
		if fixed == uri {
			return true
		}
	}
	return false
}

func (r *reader) readSequences() (int, error) {
	subjects := r.g.SubjectsOfType(typeSequence)
	for _, s := range subjects {
		uri, err := subjectURI(s, "Sequence")
		if err != nil {
			return 0, err
		}
		opts, err := r.metadata(s, typeSequence)
		if err != nil {
			return 0, err
		}
		seq, err := NewSequence(uri, r.value(s, predElements), r.value(s, predEncoding), opts...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", uri, err)
		}
		if err := r.register(r.d.sequences.add(uri, seq), uri, seq); err != nil {
			return 0, err
		}
	}
	return len(subjects), nil
}

// readComponentDefinitions builds every definition from its own fields.
// Types are taken as written: nothing is inferred on read.
func (r *reader) readComponentDefinitions() (int, error) {
	for _, s := range r.g.SubjectsOfType(typeComponentDefinition) {
		uri, err := subjectURI(s, "ComponentDefinition")
		if err != nil {
			return 0, err
		}
		opts, err := r.metadata(s, typeComponentDefinition)
		if err != nil {
			return 0, err
		}
		cd := &ComponentDefinition{Identified: newIdentified(uri, KindTopLevel, opts)}
		types := r.values(s, predType)
		if len(types) == 0 {
			types = []string{"DNA"}
		}
		if err := cd.SetTypes(types...); err != nil {
			return 0, fmt.Errorf("%s: %w", uri, err)
		}
		if err := cd.SetRoles(r.values(s, predRole)...); err != nil {
			return 0, fmt.Errorf("%s: %w", uri, err)
		}
		if err := r.register(r.d.componentDefinitions.add(uri, cd), uri, cd); err != nil {
			return 0, err
		}
		r.cds = append(r.cds, readNode[*ComponentDefinition]{subject: s, entity: cd})
	}
	return len(r.cds), nil
}

// readStructure attaches components, sequence annotations, constraints and
// sequence references to the definitions built by the previous pass.
// Component mapsTo links may cross definitions, so they are read once every
// definition has its components.
func (r *reader) readStructure() (int, error) {
	n := 0
	for _, node := range r.cds {
		count, err := r.readDefinitionStructure(node.subject, node.entity)
		if err != nil {
			return 0, err
		}
		n += count
	}
	for _, node := range r.cds {
		for _, cs := range r.g.Objects(node.subject, predComponent) {
			comp := r.components[cs.String()]
			if comp == nil {
				continue
			}
			mapsTos, err := r.readMapsTos(cs, r.componentInstance)
			if err != nil {
				return 0, err
			}
			comp.MapsTos = mapsTos
		}
	}
	return n, nil
}

func (r *reader) readDefinitionStructure(s rdf.Term, cd *ComponentDefinition) (int, error) {
	local := map[string]*Component{}
	for _, cs := range r.g.Objects(s, predComponent) {
		comp, err := r.readComponent(cs)
		if err != nil {
			return 0, err
		}
		cd.Components = append(cd.Components, comp)
		local[comp.Identity()] = comp
		r.components[comp.Identity()] = comp
	}

	lookup := func(referrer, field string, ref rdf.Term) (*Component, error) {
		if ref == nil {
			return nil, nil
		}
		id := lexical(ref)
		comp, ok := local[r.d.URI(id)]
		if !ok {
			return nil, &ReferenceError{Identity: id, Referrer: referrer, Field: field}
		}
		return comp, nil
	}

	for _, as := range r.objects(s, predSequenceAnnotation, predSequenceAnnotationLegacy) {
		uri, err := subjectURI(as, "SequenceAnnotation")
		if err != nil {
			return 0, err
		}
		ref, _ := r.g.Value(as, predComponent)
		comp, err := lookup(uri, "component", ref)
		if err != nil {
			return 0, err
		}
		var locations []Location
		for _, ls := range r.g.Objects(as, predLocation) {
			loc, err := r.readLocation(ls)
			if err != nil {
				return 0, err
			}
			locations = append(locations, loc)
		}
		opts, err := r.metadata(as, typeSequenceAnnotation)
		if err != nil {
			return 0, err
		}
		sa, err := NewSequenceAnnotation(uri, locations, comp, r.values(as, predRole), opts...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", uri, err)
		}
		cd.SequenceAnnotations = append(cd.SequenceAnnotations, sa)
	}

	for _, cs := range r.objects(s, predSequenceConstraint, predSequenceConstraintLegacy) {
		uri, err := subjectURI(cs, "SequenceConstraint")
		if err != nil {
			return 0, err
		}
		subjRef, _ := r.g.Value(cs, predSubject)
		subject, err := lookup(uri, "subject", subjRef)
		if err != nil {
			return 0, err
		}
		objRef, _ := r.g.Value(cs, predObject)
		object, err := lookup(uri, "object", objRef)
		if err != nil {
			return 0, err
		}
		opts, err := r.metadata(cs, typeSequenceConstraint)
		if err != nil {
			return 0, err
		}
		sc, err := NewSequenceConstraint(uri, subject, object, r.value(cs, predRestriction), opts...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", uri, err)
		}
		cd.SequenceConstraints = append(cd.SequenceConstraints, sc)
	}

	for _, ref := range r.values(s, predSequence) {
		seq, ok := r.d.sequences.get(r.d.URI(ref))
		if !ok {
			return 0, &ReferenceError{Identity: ref, Referrer: cd.Identity(), Field: "sequence"}
		}
		cd.Sequences = append(cd.Sequences, seq)
	}
	return len(cd.Components) + len(cd.SequenceAnnotations) + len(cd.SequenceConstraints), nil
}

func (r *reader) readComponent(s rdf.Term) (*Component, error) {
	uri, err := subjectURI(s, "Component")
	if err != nil {
		return nil, err
	}
	def, err := r.definition(s, uri)
	if err != nil {
		return nil, err
	}
	opts, err := r.metadata(s, typeComponent)
	if err != nil {
		return nil, err
	}
	comp, err := NewComponent(uri, def, r.value(s, predAccess), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	if err := comp.SetRoles(r.values(s, predRole)...); err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	if err := comp.SetRoleIntegration(r.value(s, predRoleIntegration)); err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return comp, nil
}

// definition resolves the sbol:definition of a component instance against
// the definitions registry. A missing property yields nil.
func (r *reader) definition(s rdf.Term, referrer string) (*ComponentDefinition, error) {
	ref := r.value(s, predDefinition)
	if ref == "" {
		return nil, nil
	}
	def, ok := r.d.componentDefinitions.get(r.d.URI(ref))
	if !ok {
		return nil, &ReferenceError{Identity: ref, Referrer: referrer, Field: "definition"}
	}
	return def, nil
}

func (r *reader) readLocation(s rdf.Term) (Location, error) {
	uri, err := subjectURI(s, "Location")
	if err != nil {
		return nil, err
	}
	opts, err := r.metadata(s, r.locationType(s))
	if err != nil {
		return nil, err
	}

	var loc Location
	switch r.locationType(s) {
	case typeRange:
		start, err := r.integer(s, predStart, uri)
		if err != nil {
			return nil, err
		}
		end, err := r.integer(s, predEnd, uri)
		if err != nil {
			return nil, err
		}
		loc = NewRange(uri, start, end, opts...)
	case typeCut:
		at, err := r.integer(s, predAt, uri)
		if err != nil {
			return nil, err
		}
		loc = NewCut(uri, at, opts...)
	default:
		loc = NewGenericLocation(uri, opts...)
	}
	if err := loc.location().SetOrientation(r.value(s, predOrientation)); err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return loc, nil
}

func (r *reader) locationType(s rdf.Term) rdf.IRI {
	switch {
	case r.hasType(s, typeRange):
		return typeRange
	case r.hasType(s, typeCut):
		return typeCut
	default:
		return typeGenericLocation
	}
}

func (r *reader) integer(s rdf.Term, p rdf.IRI, referrer string) (int, error) {
	v, ok := r.g.Value(s, p)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %s", ErrInvalidFieldType, referrer, p.Value)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lexical(v)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %v", ErrInvalidFieldType, referrer, p.Value, err)
	}
	return n, nil
}

func (r *reader) readModels() (int, error) {
	subjects := r.g.SubjectsOfType(typeModel)
	for _, s := range subjects {
		uri, err := subjectURI(s, "Model")
		if err != nil {
			return 0, err
		}
		opts, err := r.metadata(s, typeModel)
		if err != nil {
			return 0, err
		}
		m, err := NewModel(uri, r.value(s, predSource), r.value(s, predLanguage), r.value(s, predFramework), opts...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", uri, err)
		}
		if err := r.register(r.d.models.add(uri, m), uri, m); err != nil {
			return 0, err
		}
	}
	return len(subjects), nil
}

// readModuleDefinitions builds module definitions with their functional
// components, then their interactions. Participants resolve against the
// functional components of every definition.
func (r *reader) readModuleDefinitions() (int, error) {
	for _, s := range r.g.SubjectsOfType(typeModuleDefinition) {
		uri, err := subjectURI(s, "ModuleDefinition")
		if err != nil {
			return 0, err
		}
		opts, err := r.metadata(s, typeModuleDefinition)
		if err != nil {
			return 0, err
		}
		md, err := NewModuleDefinition(uri, r.values(s, predRole), opts...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", uri, err)
		}
		for _, ref := range r.values(s, predModel) {
			m, ok := r.d.models.get(r.d.URI(ref))
			if !ok {
				return 0, &ReferenceError{Identity: ref, Referrer: uri, Field: "model"}
			}
			md.Models = append(md.Models, m)
		}
		for _, fs := range r.g.Objects(s, predFunctionalComponent) {
			fc, err := r.readFunctionalComponent(fs)
			if err != nil {
				return 0, err
			}
			md.FunctionalComponents = append(md.FunctionalComponents, fc)
			r.d.functionalComponents[fc.Identity()] = fc
		}
		if err := r.register(r.d.moduleDefinitions.add(uri, md), uri, md); err != nil {
			return 0, err
		}
		r.mds = append(r.mds, readNode[*ModuleDefinition]{subject: s, entity: md})
	}

	for _, node := range r.mds {
		for _, is := range r.g.Objects(node.subject, predInteraction) {
			in, err := r.readInteraction(is)
			if err != nil {
				return 0, err
			}
			node.entity.Interactions = append(node.entity.Interactions, in)
		}
	}
	return len(r.mds), nil
}

func (r *reader) readFunctionalComponent(s rdf.Term) (*FunctionalComponent, error) {
	uri, err := subjectURI(s, "FunctionalComponent")
	if err != nil {
		return nil, err
	}
	def, err := r.definition(s, uri)
	if err != nil {
		return nil, err
	}
	opts, err := r.metadata(s, typeFunctionalComponent)
	if err != nil {
		return nil, err
	}
	fc, err := NewFunctionalComponent(uri, def, r.value(s, predAccess), r.value(s, predDirection), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return fc, nil
}

func (r *reader) readInteraction(s rdf.Term) (*Interaction, error) {
	uri, err := subjectURI(s, "Interaction")
	if err != nil {
		return nil, err
	}
	opts, err := r.metadata(s, typeInteraction)
	if err != nil {
		return nil, err
	}
	in, err := NewInteraction(uri, r.values(s, predType), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	for _, ps := range r.g.Objects(s, predParticipation) {
		puri, err := subjectURI(ps, "Participation")
		if err != nil {
			return nil, err
		}
		var participant *FunctionalComponent
		if ref := r.value(ps, predParticipant); ref != "" {
			fc, ok := r.d.functionalComponents[r.d.URI(ref)]
			if !ok {
				return nil, &ReferenceError{Identity: ref, Referrer: puri, Field: "participant"}
			}
			participant = fc
		}
		popts, err := r.metadata(ps, typeParticipation)
		if err != nil {
			return nil, err
		}
		p, err := NewParticipation(puri, participant, r.values(ps, predRole), popts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", puri, err)
		}
		in.Participations = append(in.Participations, p)
	}
	return in, nil
}

// readModules attaches modules and every mapsTo below a module definition.
// Module definitions may reference each other in any order, so this runs
// after all of them exist.
func (r *reader) readModules() (int, error) {
	n := 0
	for _, node := range r.mds {
		md := node.entity
		for _, ms := range r.g.Objects(node.subject, predModule) {
			uri, err := subjectURI(ms, "Module")
			if err != nil {
				return 0, err
			}
			var def *ModuleDefinition
			if ref := r.value(ms, predDefinition); ref != "" {
				found, ok := r.d.moduleDefinitions.get(r.d.URI(ref))
				if !ok {
					return 0, &ReferenceError{Identity: ref, Referrer: uri, Field: "definition"}
				}
				def = found
			}
			opts, err := r.metadata(ms, typeModule)
			if err != nil {
				return 0, err
			}
			mod := NewModule(uri, def, opts...)
			if mod.MapsTos, err = r.readMapsTos(ms, r.functionalInstance); err != nil {
				return 0, err
			}
			md.Modules = append(md.Modules, mod)
			n++
		}
		for _, fs := range r.g.Objects(node.subject, predFunctionalComponent) {
			fc := r.d.functionalComponents[fs.String()]
			if fc == nil {
				continue
			}
			mapsTos, err := r.readMapsTos(fs, r.functionalInstance)
			if err != nil {
				return 0, err
			}
			fc.MapsTos = mapsTos
		}
	}
	return n, nil
}

func (r *reader) componentInstance(uri string) (Instance, bool) {
	c, ok := r.components[r.d.URI(uri)]
	if !ok {
		return nil, false
	}
	return c, true
}

func (r *reader) functionalInstance(uri string) (Instance, bool) {
	fc, ok := r.d.functionalComponents[r.d.URI(uri)]
	if !ok {
		return nil, false
	}
	return fc, true
}

func (r *reader) readMapsTos(owner rdf.Term, resolve func(string) (Instance, bool)) ([]*MapsTo, error) {
	var out []*MapsTo
	for _, s := range r.g.Objects(owner, predMapsTo) {
		uri, err := subjectURI(s, "MapsTo")
		if err != nil {
			return nil, err
		}
		var local, remote Instance
		if ref := r.value(s, predLocal); ref != "" {
			inst, ok := resolve(ref)
			if !ok {
				return nil, &ReferenceError{Identity: ref, Referrer: uri, Field: "local"}
			}
			local = inst
		}
		if ref := r.value(s, predRemote); ref != "" {
			inst, ok := resolve(ref)
			if !ok {
				return nil, &ReferenceError{Identity: ref, Referrer: uri, Field: "remote"}
			}
			remote = inst
		}
		opts, err := r.metadata(s, typeMapsTo)
		if err != nil {
			return nil, err
		}
		m, err := NewMapsTo(uri, local, remote, r.value(s, predRefinement), opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", uri, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// readGenericTopLevels keeps every top-level resource of a type SBOL does
// not define. Untyped resources are typed rdf:Description.
func (r *reader) readGenericTopLevels() (int, error) {
	var candidates []rdf.Term
	if r.g.TracksTopLevel() {
		candidates = r.g.TopLevelSubjects()
	} else {
		for _, s := range r.g.Subjects() {
			if _, ok := r.nested[s.String()]; !ok {
				candidates = append(candidates, s)
			}
		}
	}

	n := 0
	for _, s := range candidates {
		iri, ok := s.(rdf.IRI)
		if !ok || r.hasKnownType(s) {
			continue
		}
		name := rdfDescription
		if types := r.g.Types(s); len(types) > 0 {
			var err error
			if name, err = r.d.qname(types[0].Value); err != nil {
				return 0, err
			}
		}
		opts := r.identifiedOpts(s)
		anns, err := r.annotations(s, genericPredicates, true, map[string]bool{})
		if err != nil {
			return 0, err
		}
		if len(anns) > 0 {
			opts = append(opts, OptAnnotations(anns...))
		}
		gtl := NewGenericTopLevel(iri.Value, name, opts...)
		if err := r.register(r.d.genericTopLevels.add(iri.Value, gtl), iri.Value, gtl); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// readCollections runs last so members of any kind, collections included,
// resolve.
func (r *reader) readCollections() (int, error) {
	type pending struct {
		subject rdf.Term
		c       *Collection
	}
	var all []pending
	for _, s := range r.g.SubjectsOfType(typeCollection) {
		uri, err := subjectURI(s, "Collection")
		if err != nil {
			return 0, err
		}
		opts, err := r.metadata(s, typeCollection)
		if err != nil {
			return 0, err
		}
		c := NewCollection(uri, nil, opts...)
		if err := r.register(r.d.collections.add(uri, c), uri, c); err != nil {
			return 0, err
		}
		all = append(all, pending{subject: s, c: c})
	}
	for _, p := range all {
		for _, ref := range r.values(p.subject, predMember) {
			member, ok := r.d.entities[r.d.URI(ref)]
			if !ok {
				return 0, &ReferenceError{Identity: ref, Referrer: p.c.Identity(), Field: "member"}
			}
			p.c.Members = append(p.c.Members, member)
		}
	}
	return len(all), nil
}

// register records a freshly added top-level entity in the any-kind index.
func (r *reader) register(addErr error, uri string, e TopLevel) error {
	if addErr != nil {
		return addErr
	}
	r.d.entities[uri] = e
	return nil
}

// metadata reads the Identified fields of s and its annotations.
func (r *reader) metadata(s rdf.Term, kind rdf.IRI) ([]Option, error) {
	opts := r.identifiedOpts(s)
	anns, err := r.annotations(s, consumedPredicates[kind.Value], false, map[string]bool{})
	if err != nil {
		return nil, err
	}
	if len(anns) > 0 {
		opts = append(opts, OptAnnotations(anns...))
	}
	return opts, nil
}

func (r *reader) identifiedOpts(s rdf.Term) []Option {
	return []Option{
		OptDisplayID(r.value(s, predDisplayID)),
		OptName(r.value(s, predTitle)),
		OptDescription(r.value(s, predDescription)),
		OptVersion(r.value(s, predVersion)),
		OptWasDerivedFrom(r.value(s, predWasDerivedFrom)),
	}
}

// annotations collects the triples of s as annotations, in graph order.
// Predicates in skip are dropped. The first rdf:type is always
// dropped since it names the resource; later ones are kept only when
// keepTypes is set.
func (r *reader) annotations(s rdf.Term, skip map[string]struct{}, keepTypes bool, visited map[string]bool) ([]Annotation, error) {
	var out []Annotation
	seenType := false
	for _, t := range r.g.TriplesFor(s) {
		if t.P.Value == rdf.RDFType.Value {
			if !seenType || !keepTypes {
				seenType = true
				continue
			}
		} else if _, consumed := skip[t.P.Value]; consumed {
			continue
		}
		name, err := r.d.qname(t.P.Value)
		if err != nil {
			return nil, err
		}
		value, err := r.annotationValue(t.O, visited)
		if err != nil {
			return nil, err
		}
		out = append(out, Annotation{Name: name, Value: value})
	}
	return out, nil
}

func (r *reader) annotationValue(o rdf.Term, visited map[string]bool) (AnnotationValue, error) {
	switch v := o.(type) {
	case rdf.Literal:
		return AnnotationValue{Literal: v.Lexical, Datatype: v.Datatype.Value, Lang: v.Lang}, nil
	case rdf.IRI:
		if visited[v.String()] || !r.g.HasSubject(v) || r.isTopLevel(v) || r.hasKnownType(v) {
			return AnnotationValue{URI: v.Value}, nil
		}
		nested, err := r.nestedAnnotation(v, v.Value, visited)
		return AnnotationValue{Nested: nested}, err
	case rdf.BlankNode:
		if visited[v.String()] {
			return AnnotationValue{Nested: &NestedAnnotation{Name: rdfDescription}}, nil
		}
		nested, err := r.nestedAnnotation(v, "", visited)
		return AnnotationValue{Nested: nested}, err
	default:
		return AnnotationValue{}, fmt.Errorf("unexpected annotation object %v", o)
	}
}

func (r *reader) nestedAnnotation(s rdf.Term, uri string, visited map[string]bool) (*NestedAnnotation, error) {
	visited[s.String()] = true
	defer delete(visited, s.String())

	n := &NestedAnnotation{Name: rdfDescription, URI: uri}
	if types := r.g.Types(s); len(types) > 0 {
		name, err := r.d.qname(types[0].Value)
		if err != nil {
			return nil, err
		}
		n.Name = name
	}
	anns, err := r.annotations(s, nil, true, visited)
	if err != nil {
		return nil, err
	}
	n.Annotations = anns
	return n, nil
}

func (r *reader) isTopLevel(t rdf.Term) bool {
	if r.g.TracksTopLevel() {
		return r.g.IsTopLevel(t)
	}
	_, nested := r.nested[t.String()]
	return !nested
}

func (r *reader) hasKnownType(s rdf.Term) bool {
	for _, t := range r.g.Types(s) {
		if _, ok := knownTypes[t.Value]; ok {
			return true
		}
	}
	return false
}

func (r *reader) hasType(s rdf.Term, typ rdf.IRI) bool {
	for _, t := range r.g.Types(s) {
		if t.Value == typ.Value {
			return true
		}
	}
	return false
}

// objects returns the objects of s under any of preds, in that order.
func (r *reader) objects(s rdf.Term, preds ...rdf.IRI) []rdf.Term {
	var out []rdf.Term
	for _, p := range preds {
		out = append(out, r.g.Objects(s, p)...)
	}
	return out
}

func (r *reader) value(s rdf.Term, p rdf.IRI) string {
	o, ok := r.g.Value(s, p)
	if !ok {
		return ""
	}
	return lexical(o)
}

func (r *reader) values(s rdf.Term, p rdf.IRI) []string {
	var out []string
	for _, o := range r.g.Objects(s, p) {
		if v := lexical(o); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func lexical(o rdf.Term) string {
	switch v := o.(type) {
	case rdf.IRI:
		return v.Value
	case rdf.Literal:
		return v.Lexical
	default:
		return ""
	}
}

func subjectURI(s rdf.Term, kind string) (string, error) {
	iri, ok := s.(rdf.IRI)
	if !ok {
		return "", fmt.Errorf("%s %s has no URI", kind, s)
	}
	return iri.Value, nil
}

// qname splits iri into a prefixed name. The longest active namespace that
// leaves a valid local name wins; otherwise the IRI is split at its last
// '#' or '/' and the namespace gets an existing or generated prefix.
func (d *Document) qname(iri string) (QName, error) {
	active := d.Namespaces()
	prefixes := make([]string, 0, len(active))
	for p := range active {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	best := QName{}
	for _, p := range prefixes {
		ns := active[p]
		if !strings.HasPrefix(iri, ns) || len(ns) <= len(best.Namespace) {
			continue
		}
		if local := iri[len(ns):]; rdf.IsNCName(local) {
			best = QName{Namespace: ns, LocalName: local, Prefix: p}
		}
	}
	if best.Prefix != "" {
		return best, nil
	}

	ns, local, ok := rdf.SplitIRI(iri)
	if !ok {
		return QName{}, fmt.Errorf("%w: %q cannot be written as a qualified name", ErrInvalidFieldType, iri)
	}
	prefix, ok := d.prefixFor(ns)
	if !ok {
		prefix = d.bindGeneratedPrefix(ns)
	}
	return QName{Namespace: ns, LocalName: local, Prefix: prefix}, nil
}
