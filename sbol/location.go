package sbol

import "github.com/geoknoesis/sbol-go/vocab"

// Location is a Range, Cut or GenericLocation.
type Location interface {
	Entity
	Orientation() string
	location() *LocationCore
}

// LocationCore holds what every location shares.
type LocationCore struct {
	Identified
	orientation string
}

func newLocationCore(identity string, opts []Option) LocationCore {
	return LocationCore{Identified: newIdentified(identity, KindNested, opts)}
}

// Orientation returns the orientation term URI, or "" when unset.
func (l *LocationCore) Orientation() string { return l.orientation }

// SetOrientation validates and sets the orientation. An empty value clears it.
func (l *LocationCore) SetOrientation(orientation string) error {
	if orientation == "" {
		l.orientation = ""
		return nil
	}
	uri, err := vocab.Validate(orientation, vocab.Orientations)
	if err != nil {
		return err
	}
	l.orientation = uri
	return nil
}

func (l *LocationCore) location() *LocationCore { return l }

// Range covers positions Start to End.
type Range struct {
	LocationCore
	Start int
	End   int
}

// NewRange creates a Range.
func NewRange(identity string, start, end int, opts ...Option) *Range {
	return &Range{LocationCore: newLocationCore(identity, opts), Start: start, End: end}
}

// Cut marks the point just after position At.
type Cut struct {
	LocationCore
	At int
}

// NewCut creates a Cut.
func NewCut(identity string, at int, opts ...Option) *Cut {
	return &Cut{LocationCore: newLocationCore(identity, opts), At: at}
}

// GenericLocation is a location without coordinates.
type GenericLocation struct {
	LocationCore
}

// NewGenericLocation creates a GenericLocation.
func NewGenericLocation(identity string, opts ...Option) *GenericLocation {
	return &GenericLocation{LocationCore: newLocationCore(identity, opts)}
}
