package sbol

// Collection groups top-level entities.
type Collection struct {
	Identified
	Members []TopLevel
}

// NewCollection creates a Collection.
func NewCollection(identity string, members []TopLevel, opts ...Option) *Collection {
	return &Collection{
		Identified: newIdentified(identity, KindTopLevel, opts),
		Members:    append([]TopLevel(nil), members...),
	}
}

func (*Collection) isTopLevel() {}

// GenericTopLevel is a top-level resource whose type SBOL does not define.
// Its properties are kept as annotations.
type GenericTopLevel struct {
	Identified
	RDFType QName
}

// NewGenericTopLevel creates a GenericTopLevel of the given type.
func NewGenericTopLevel(identity string, rdfType QName, opts ...Option) *GenericTopLevel {
	return &GenericTopLevel{Identified: newIdentified(identity, KindTopLevel, opts), RDFType: rdfType}
}

func (*GenericTopLevel) isTopLevel() {}
