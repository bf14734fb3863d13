package sbol

import (
	"fmt"

	"github.com/geoknoesis/sbol-go/vocab"
)

// ComponentDefinition describes a structural entity of a design.
type ComponentDefinition struct {
	Identified
	types []string
	roles []string

	Sequences           []*Sequence
	Components          []*Component
	SequenceAnnotations []*SequenceAnnotation
	SequenceConstraints []*SequenceConstraint
}

// NewComponentDefinition creates a ComponentDefinition. With no types it is
// a DNA region. DNA and RNA regions without a topology term are made linear,
// and get the natural strand term (double for DNA, single for RNA) when none
// is given.
func NewComponentDefinition(identity string, types, roles []string, opts ...Option) (*ComponentDefinition, error) {
	cd := &ComponentDefinition{Identified: newIdentified(identity, KindTopLevel, opts)}
	if len(types) == 0 {
		types = []string{"DNA"}
	}
	if err := cd.SetTypes(types...); err != nil {
		return nil, err
	}
	cd.inferStructure()
	if err := cd.SetRoles(roles...); err != nil {
		return nil, err
	}
	return cd, nil
}

func (*ComponentDefinition) isTopLevel() {}

// Types returns the type term URIs.
func (cd *ComponentDefinition) Types() []string { return append([]string(nil), cd.types...) }

// SetTypes validates and replaces the types. At least one type is required.
func (cd *ComponentDefinition) SetTypes(types ...string) error {
	if len(types) == 0 {
		return fmt.Errorf("%w: %s needs at least one type", ErrInvalidFieldType, cd.identity)
	}
	out, err := vocab.ValidateList(types, vocab.ComponentTypes)
	if err != nil {
		return err
	}
	cd.types = out
	return nil
}

// Roles returns the role term URIs.
func (cd *ComponentDefinition) Roles() []string { return append([]string(nil), cd.roles...) }

// SetRoles validates and replaces the roles.
func (cd *ComponentDefinition) SetRoles(roles ...string) error {
	out, err := vocab.ValidateList(roles, vocab.Roles)
	if err != nil {
		return err
	}
	cd.roles = out
	return nil
}

func (cd *ComponentDefinition) hasType(table *vocab.Table) bool {
	for _, t := range cd.types {
		if table.Canonical(t) {
			return true
		}
	}
	return false
}

func (cd *ComponentDefinition) inferStructure() {
	dna, _ := vocab.ComponentTypes.Lookup("DNA")
	rna, _ := vocab.ComponentTypes.Lookup("RNA")
	var strand string
	for _, t := range cd.types {
		switch t {
		case dna:
			strand = "double-stranded"
		case rna:
			if strand == "" {
				strand = "single-stranded"
			}
		}
	}
	if strand == "" {
		return
	}
	if !cd.hasType(vocab.Topologies) {
		linear, _ := vocab.Topologies.Lookup("linear")
		cd.types = append(cd.types, linear)
	}
	if !cd.hasType(vocab.Strands) {
		uri, _ := vocab.Strands.Lookup(strand)
		cd.types = append(cd.types, uri)
	}
}
