package sbol

import "github.com/geoknoesis/sbol-go/vocab"

// Sequence is the primary structure of a ComponentDefinition.
type Sequence struct {
	Identified
	Elements string
	encoding string
}

// NewSequence creates a Sequence. An empty encoding defaults to DNA.
func NewSequence(identity, elements, encoding string, opts ...Option) (*Sequence, error) {
	s := &Sequence{
		Identified: newIdentified(identity, KindTopLevel, opts),
		Elements:   elements,
	}
	if encoding == "" {
		encoding = "DNA"
	}
	if err := s.SetEncoding(encoding); err != nil {
		return nil, err
	}
	return s, nil
}

func (*Sequence) isTopLevel() {}

// Encoding returns the encoding term URI.
func (s *Sequence) Encoding() string { return s.encoding }

// SetEncoding validates and sets the encoding.
func (s *Sequence) SetEncoding(encoding string) error {
	uri, err := vocab.Validate(encoding, vocab.Encodings)
	if err != nil {
		return err
	}
	s.encoding = uri
	return nil
}

// SequenceAnnotation marks regions of a definition's sequence.
type SequenceAnnotation struct {
	Identified
	Locations []Location
	Component *Component
	roles     []string
}

// NewSequenceAnnotation creates a SequenceAnnotation. component may be nil.
func NewSequenceAnnotation(identity string, locations []Location, component *Component, roles []string, opts ...Option) (*SequenceAnnotation, error) {
	sa := &SequenceAnnotation{
		Identified: newIdentified(identity, KindNested, opts),
		Locations:  append([]Location(nil), locations...),
		Component:  component,
	}
	if err := sa.SetRoles(roles...); err != nil {
		return nil, err
	}
	return sa, nil
}

// Roles returns the role term URIs.
func (sa *SequenceAnnotation) Roles() []string { return append([]string(nil), sa.roles...) }

// SetRoles validates and replaces the roles.
func (sa *SequenceAnnotation) SetRoles(roles ...string) error {
	out, err := vocab.ValidateList(roles, vocab.Roles)
	if err != nil {
		return err
	}
	sa.roles = out
	return nil
}

// FirstLocation returns the lowest Range start or Cut position. ok is false
// when the annotation has no Range or Cut.
func (sa *SequenceAnnotation) FirstLocation() (pos int, ok bool) {
	for _, loc := range sa.Locations {
		var p int
		switch l := loc.(type) {
		case *Range:
			p = l.Start
		case *Cut:
			p = l.At
		default:
			continue
		}
		if !ok || p < pos {
			pos, ok = p, true
		}
	}
	return pos, ok
}

// SequenceConstraint restricts the relative position of two components.
type SequenceConstraint struct {
	Identified
	Subject     *Component
	Object      *Component
	restriction string
}

// NewSequenceConstraint creates a SequenceConstraint.
func NewSequenceConstraint(identity string, subject, object *Component, restriction string, opts ...Option) (*SequenceConstraint, error) {
	sc := &SequenceConstraint{
		Identified: newIdentified(identity, KindNested, opts),
		Subject:    subject,
		Object:     object,
	}
	if err := sc.SetRestriction(restriction); err != nil {
		return nil, err
	}
	return sc, nil
}

// Restriction returns the restriction term URI.
func (sc *SequenceConstraint) Restriction() string { return sc.restriction }

// SetRestriction validates and sets the restriction.
func (sc *SequenceConstraint) SetRestriction(restriction string) error {
	uri, err := vocab.Validate(restriction, vocab.Restrictions)
	if err != nil {
		return err
	}
	sc.restriction = uri
	return nil
}
