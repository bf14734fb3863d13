package sbol

import "github.com/geoknoesis/sbol-go/vocab"

// Model points at an external computational model.
type Model struct {
	Identified
	Source    string
	language  string
	framework string
}

// NewModel creates a Model.
func NewModel(identity, source, language, framework string, opts ...Option) (*Model, error) {
	m := &Model{Identified: newIdentified(identity, KindTopLevel, opts), Source: source}
	if err := m.SetLanguage(language); err != nil {
		return nil, err
	}
	if err := m.SetFramework(framework); err != nil {
		return nil, err
	}
	return m, nil
}

func (*Model) isTopLevel() {}

// Language returns the language term URI.
func (m *Model) Language() string { return m.language }

// SetLanguage validates and sets the language.
func (m *Model) SetLanguage(language string) error {
	uri, err := vocab.Validate(language, vocab.Languages)
	if err != nil {
		return err
	}
	m.language = uri
	return nil
}

// Framework returns the framework term URI.
func (m *Model) Framework() string { return m.framework }

// SetFramework validates and sets the framework.
func (m *Model) SetFramework(framework string) error {
	uri, err := vocab.Validate(framework, vocab.Frameworks)
	if err != nil {
		return err
	}
	m.framework = uri
	return nil
}

// ModuleDefinition groups structural and functional entities.
type ModuleDefinition struct {
	Identified
	roles []string

	Modules              []*Module
	FunctionalComponents []*FunctionalComponent
	Interactions         []*Interaction
	Models               []*Model
}

// NewModuleDefinition creates a ModuleDefinition.
func NewModuleDefinition(identity string, roles []string, opts ...Option) (*ModuleDefinition, error) {
	md := &ModuleDefinition{Identified: newIdentified(identity, KindTopLevel, opts)}
	if err := md.SetRoles(roles...); err != nil {
		return nil, err
	}
	return md, nil
}

func (*ModuleDefinition) isTopLevel() {}

// Roles returns the role term URIs.
func (md *ModuleDefinition) Roles() []string { return append([]string(nil), md.roles...) }

// SetRoles validates and replaces the roles.
func (md *ModuleDefinition) SetRoles(roles ...string) error {
	out, err := vocab.ValidateList(roles, vocab.Roles)
	if err != nil {
		return err
	}
	md.roles = out
	return nil
}

// Module is a use of a ModuleDefinition inside another one.
type Module struct {
	Identified
	Definition *ModuleDefinition
	MapsTos    []*MapsTo
}

// NewModule creates a Module.
func NewModule(identity string, definition *ModuleDefinition, opts ...Option) *Module {
	return &Module{Identified: newIdentified(identity, KindNested, opts), Definition: definition}
}

// Interaction describes how functional components work together.
type Interaction struct {
	Identified
	types          []string
	Participations []*Participation
}

// NewInteraction creates an Interaction.
func NewInteraction(identity string, types []string, opts ...Option) (*Interaction, error) {
	in := &Interaction{Identified: newIdentified(identity, KindNested, opts)}
	if err := in.SetTypes(types...); err != nil {
		return nil, err
	}
	return in, nil
}

// Types returns the interaction type term URIs.
func (in *Interaction) Types() []string { return append([]string(nil), in.types...) }

// SetTypes validates and replaces the interaction types.
func (in *Interaction) SetTypes(types ...string) error {
	out, err := vocab.ValidateList(types, vocab.InteractionTypes)
	if err != nil {
		return err
	}
	in.types = out
	return nil
}

// Participation is the part a FunctionalComponent plays in an Interaction.
type Participation struct {
	Identified
	Participant *FunctionalComponent
	roles       []string
}

// NewParticipation creates a Participation.
func NewParticipation(identity string, participant *FunctionalComponent, roles []string, opts ...Option) (*Participation, error) {
	p := &Participation{Identified: newIdentified(identity, KindNested, opts), Participant: participant}
	if err := p.SetRoles(roles...); err != nil {
		return nil, err
	}
	return p, nil
}

// Roles returns the participant role term URIs.
func (p *Participation) Roles() []string { return append([]string(nil), p.roles...) }

// SetRoles validates and replaces the participant roles.
func (p *Participation) SetRoles(roles ...string) error {
	out, err := vocab.ValidateList(roles, vocab.ParticipantRoles)
	if err != nil {
		return err
	}
	p.roles = out
	return nil
}
