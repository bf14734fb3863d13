// Package vocab holds the SBOL controlled vocabularies and the validator every
// controlled field goes through.
//
// A value is accepted when it is a symbol of the table, in which case the
// canonical term URI is returned, or when it is already an absolute URI, in
// which case it passes through unchanged:
//
//	uri, err := vocab.Validate("Promoter", vocab.Roles)
//	// uri == "http://identifiers.org/so/SO:0000167"
package vocab

import (
	"errors"
	"fmt"
	"sort"

	"github.com/geoknoesis/sbol-go/rdf"
)

// ErrInvalidTerm is returned for values that are neither a table symbol nor
// an absolute URI.
var ErrInvalidTerm = errors.New("invalid vocabulary term")

// TermError names the rejected value and the table it was checked against.
type TermError struct {
	Value string
	Table string
}

func (e *TermError) Error() string {
	return fmt.Sprintf("%q is not a valid URI or %s term", e.Value, e.Table)
}

func (e *TermError) Unwrap() error { return ErrInvalidTerm }

// Table maps symbolic names to canonical term URIs.
type Table struct {
	name      string
	terms     map[string]string
	canonical map[string]struct{}
}

// NewTable builds a table. Every term must be an absolute URI.
func NewTable(name string, terms map[string]string) (*Table, error) {
	t := &Table{
		name:      name,
		terms:     make(map[string]string, len(terms)),
		canonical: make(map[string]struct{}, len(terms)),
	}
	for symbol, uri := range terms {
		if !rdf.IsAbsoluteURI(uri) {
			return nil, fmt.Errorf("vocab: table %s: %s maps to non-absolute URI %q", name, symbol, uri)
		}
		t.terms[symbol] = uri
		t.canonical[uri] = struct{}{}
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Lookup returns the canonical URI for symbol.
func (t *Table) Lookup(symbol string) (string, bool) {
	uri, ok := t.terms[symbol]
	return uri, ok
}

// Symbols returns the table's symbols, sorted.
func (t *Table) Symbols() []string {
	out := make([]string, 0, len(t.terms))
	for s := range t.terms {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Canonical reports whether uri is one of the table's term URIs.
func (t *Table) Canonical(uri string) bool {
	_, ok := t.canonical[uri]
	return ok
}

// Validate returns the canonical URI for value.
func Validate(value string, t *Table) (string, error) {
	if uri, ok := t.terms[value]; ok {
		return uri, nil
	}
	if rdf.IsAbsoluteURI(value) {
		return value, nil
	}
	return "", &TermError{Value: value, Table: t.name}
}

// ValidateList validates each value independently. The result is a new
// slice in input order.
func ValidateList(values []string, t *Table) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		uri, err := Validate(v, t)
		if err != nil {
			return nil, err
		}
		out = append(out, uri)
	}
	return out, nil
}

// ValidateStrict accepts only table symbols and the table's own term URIs.
func ValidateStrict(value string, t *Table) (string, error) {
	if uri, ok := t.terms[value]; ok {
		return uri, nil
	}
	if t.Canonical(value) {
		return value, nil
	}
	return "", &TermError{Value: value, Table: t.name}
}
