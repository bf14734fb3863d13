package sbol

import (
	"fmt"
	"sort"
	"strings"
)

// Assemble rebuilds into from parts, in order. Every part must already be in
// the Document. into gets one public Component per part, and every part with
// a sequence contributes a Range annotation over its slice of the combined
// sequence, which is registered and appended to into.Sequences.
//
// Positions are 1-based: a part of length n starting after m assembled bases
// spans m+1 to m+1+n.
//
// On error the Document and into are unchanged.
func (d *Document) Assemble(into *ComponentDefinition, parts []*ComponentDefinition) error {
	if into == nil {
		return fmt.Errorf("%w: nothing to assemble into", ErrInvalidFieldType)
	}
	if len(parts) == 0 {
		return fmt.Errorf("%w: %s: no parts to assemble", ErrInvalidFieldType, into.Identity())
	}
	for _, part := range parts {
		if part == nil {
			return fmt.Errorf("%w: %s: nil part", ErrInvalidFieldType, into.Identity())
		}
		if _, ok := d.componentDefinitions.get(d.URI(part.Identity())); !ok {
			return &IdentityError{Kind: "ComponentDefinition", Identity: part.Identity(), Err: ErrUndefinedReference}
		}
	}

	combinedID := into.Identity() + "_sequence"
	if d.sequences.has(d.URI(combinedID)) {
		return &IdentityError{Kind: "Sequence", Identity: combinedID, Err: ErrDuplicateIdentity}
	}

	var (
		acc         strings.Builder
		encoding    string
		components  = make([]*Component, 0, len(parts))
		annotations []*SequenceAnnotation
		partSeqs    []*Sequence
		used        = map[string]int{}
	)
	for _, part := range parts {
		compID := into.Identity() + "/" + part.DisplayID()
		if n := used[compID]; n > 0 {
			used[compID] = n + 1
			compID = fmt.Sprintf("%s_%d", compID, n)
		} else {
			used[compID] = 1
		}

		comp, err := NewComponent(compID, part, "public", OptDisplayID(part.DisplayID()))
		if err != nil {
			return err
		}
		components = append(components, comp)

		if len(part.Sequences) == 0 {
			continue
		}
		seq := part.Sequences[0]
		if encoding == "" {
			encoding = seq.Encoding()
		}
		partSeqs = append(partSeqs, seq)

		start := acc.Len() + 1
		end := start + len(seq.Elements)
		acc.WriteString(seq.Elements)

		saID := compID + "_sequence_annotation"
		rng := NewRange(saID+"/range", start, end, OptDisplayID("range"))
		sa, err := NewSequenceAnnotation(saID, []Location{rng}, comp, nil,
			OptDisplayID(part.DisplayID()+"_sequence_annotation"))
		if err != nil {
			return err
		}
		annotations = append(annotations, sa)
	}

	var combined *Sequence
	if acc.Len() > 0 {
		var err error
		combined, err = NewSequence(combinedID, acc.String(), encoding)
		if err != nil {
			return err
		}
	}

	fresh := map[string]*Sequence{}
	for _, seq := range partSeqs {
		key := d.URI(seq.Identity())
		if combined != nil && key == d.URI(combinedID) {
			return &IdentityError{Kind: "Sequence", Identity: combinedID, Err: ErrDuplicateIdentity}
		}
		if d.sequences.has(key) {
			continue
		}
		if prev, ok := fresh[key]; ok && prev != seq {
			return &IdentityError{Kind: "Sequence", Identity: seq.Identity(), Err: ErrDuplicateIdentity}
		}
		fresh[key] = seq
	}

	for _, seq := range partSeqs {
		key := d.URI(seq.Identity())
		if d.sequences.has(key) {
			continue
		}
		if err := d.sequences.add(key, seq); err != nil {
			return err
		}
	}
	if combined != nil {
		if err := d.sequences.add(d.URI(combinedID), combined); err != nil {
			return err
		}
		into.Sequences = append(into.Sequences, combined)
	}
	into.Components = components
	into.SequenceAnnotations = annotations

	d.logger.Debug("assembled component definition",
		"identity", into.Identity(), "parts", len(parts), "length", acc.Len())
	return nil
}

// OrderedComponents returns the components of the definition with identity
// in the order their sequence annotations appear along its sequence.
// Components without a positioned annotation are left out.
func (d *Document) OrderedComponents(identity string) ([]*Component, error) {
	cd, ok := d.GetComponentDefinition(identity)
	if !ok {
		return nil, &IdentityError{Kind: "ComponentDefinition", Identity: identity, Err: ErrUndefinedReference}
	}

	type positioned struct {
		pos  int
		comp *Component
	}
	var list []positioned
	for _, sa := range cd.SequenceAnnotations {
		pos, ok := sa.FirstLocation()
		if !ok || sa.Component == nil {
			continue
		}
		list = append(list, positioned{pos: pos, comp: sa.Component})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].pos < list[j].pos })

	out := make([]*Component, 0, len(list))
	for _, p := range list {
		out = append(out, p.comp)
	}
	return out, nil
}
