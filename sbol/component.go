package sbol

import "github.com/geoknoesis/sbol-go/vocab"

// ComponentInstance is the part Component and FunctionalComponent share: a
// use of a ComponentDefinition inside a larger design.
type ComponentInstance struct {
	Identified
	Definition *ComponentDefinition
	MapsTos    []*MapsTo
	access     string
}

func newComponentInstance(identity string, definition *ComponentDefinition, access string, opts []Option) (ComponentInstance, error) {
	ci := ComponentInstance{
		Identified: newIdentified(identity, KindNested, opts),
		Definition: definition,
	}
	if access == "" {
		access = "public"
	}
	if err := ci.SetAccess(access); err != nil {
		return ComponentInstance{}, err
	}
	return ci, nil
}

// Access returns the access term URI.
func (ci *ComponentInstance) Access() string { return ci.access }

// SetAccess accepts public, private or their SBOL URIs.
func (ci *ComponentInstance) SetAccess(access string) error {
	uri, err := vocab.ValidateStrict(access, vocab.Access)
	if err != nil {
		return accessError(err)
	}
	ci.access = uri
	return nil
}

func (ci *ComponentInstance) instance() *ComponentInstance { return ci }

// Instance is a Component or a FunctionalComponent.
type Instance interface {
	Entity
	Access() string
	instance() *ComponentInstance
}

// Component places a ComponentDefinition inside another one.
type Component struct {
	ComponentInstance
	roles           []string
	roleIntegration string
}

// NewComponent creates a Component. An empty access defaults to public.
func NewComponent(identity string, definition *ComponentDefinition, access string, opts ...Option) (*Component, error) {
	ci, err := newComponentInstance(identity, definition, access, opts)
	if err != nil {
		return nil, err
	}
	return &Component{ComponentInstance: ci}, nil
}

// Roles returns the role term URIs.
func (c *Component) Roles() []string { return append([]string(nil), c.roles...) }

// SetRoles validates and replaces the roles.
func (c *Component) SetRoles(roles ...string) error {
	out, err := vocab.ValidateList(roles, vocab.Roles)
	if err != nil {
		return err
	}
	c.roles = out
	return nil
}

// RoleIntegration returns the role integration term URI, or "".
func (c *Component) RoleIntegration() string { return c.roleIntegration }

// SetRoleIntegration validates and sets the role integration. An empty
// value clears it.
func (c *Component) SetRoleIntegration(value string) error {
	if value == "" {
		c.roleIntegration = ""
		return nil
	}
	uri, err := vocab.Validate(value, vocab.RoleIntegrations)
	if err != nil {
		return err
	}
	c.roleIntegration = uri
	return nil
}

// FunctionalComponent uses a ComponentDefinition inside a ModuleDefinition.
type FunctionalComponent struct {
	ComponentInstance
	direction string
}

// NewFunctionalComponent creates a FunctionalComponent. Empty access and
// direction default to public and none.
func NewFunctionalComponent(identity string, definition *ComponentDefinition, access, direction string, opts ...Option) (*FunctionalComponent, error) {
	ci, err := newComponentInstance(identity, definition, access, opts)
	if err != nil {
		return nil, err
	}
	fc := &FunctionalComponent{ComponentInstance: ci}
	if direction == "" {
		direction = "none"
	}
	if err := fc.SetDirection(direction); err != nil {
		return nil, err
	}
	return fc, nil
}

// Direction returns the direction term URI.
func (fc *FunctionalComponent) Direction() string { return fc.direction }

// SetDirection validates and sets the direction.
func (fc *FunctionalComponent) SetDirection(direction string) error {
	uri, err := vocab.Validate(direction, vocab.Directions)
	if err != nil {
		return err
	}
	fc.direction = uri
	return nil
}

// MapsTo links a local instance to a remote one.
type MapsTo struct {
	Identified
	Local      Instance
	Remote     Instance
	refinement string
}

// NewMapsTo creates a MapsTo.
func NewMapsTo(identity string, local, remote Instance, refinement string, opts ...Option) (*MapsTo, error) {
	m := &MapsTo{
		Identified: newIdentified(identity, KindNested, opts),
		Local:      local,
		Remote:     remote,
	}
	if err := m.SetRefinement(refinement); err != nil {
		return nil, err
	}
	return m, nil
}

// Refinement returns the refinement term URI.
func (m *MapsTo) Refinement() string { return m.refinement }

// SetRefinement validates and sets the refinement.
func (m *MapsTo) SetRefinement(refinement string) error {
	uri, err := vocab.Validate(refinement, vocab.Refinements)
	if err != nil {
		return err
	}
	m.refinement = uri
	return nil
}
