package sbol

import (
	"errors"
	"fmt"
	"io"

	"github.com/geoknoesis/sbol-go/rdf"
	"github.com/geoknoesis/sbol-go/vocab"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidNamespaceURI indicates a namespace that is not an absolute URL.
	ErrCodeInvalidNamespaceURI ErrorCode = "INVALID_NAMESPACE_URI"
	// ErrCodeDuplicateIdentity indicates an identity already present in its registry.
	ErrCodeDuplicateIdentity ErrorCode = "DUPLICATE_IDENTITY"
	// ErrCodeInvalidVocabularyTerm indicates a controlled field given an unknown, non-URI value.
	ErrCodeInvalidVocabularyTerm ErrorCode = "INVALID_VOCABULARY_TERM"
	// ErrCodeInvalidFieldType indicates a collection field given an unusable value.
	ErrCodeInvalidFieldType ErrorCode = "INVALID_FIELD_TYPE"
	// ErrCodeUndefinedReference indicates a reference to an entity missing from the Document.
	ErrCodeUndefinedReference ErrorCode = "UNDEFINED_REFERENCE"
	// ErrCodeDanglingReference indicates a read-time reference that did not resolve.
	ErrCodeDanglingReference ErrorCode = "DANGLING_REFERENCE"
	// ErrCodeInvalidAccessType indicates an access field given an unrecognized value.
	ErrCodeInvalidAccessType ErrorCode = "INVALID_ACCESS_TYPE"
	// ErrCodeSyntax indicates the input could not be parsed as RDF.
	ErrCodeSyntax ErrorCode = "SYNTAX_ERROR"
	// ErrCodeUnknown is returned for errors outside the categories above.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrInvalidNamespaceURI is returned when a namespace is not an absolute URL.
	ErrInvalidNamespaceURI = errors.New("invalid namespace URI")
	// ErrDuplicateIdentity is returned when an identity is already registered.
	ErrDuplicateIdentity = errors.New("duplicate identity")
	// ErrInvalidVocabularyTerm is returned for rejected controlled-vocabulary values.
	ErrInvalidVocabularyTerm = vocab.ErrInvalidTerm
	// ErrInvalidFieldType is returned when a list field is given an empty or nil value
	// where content is required.
	ErrInvalidFieldType = errors.New("invalid field type")
	// ErrUndefinedReference is returned when an entity is used before it was added.
	ErrUndefinedReference = errors.New("undefined reference")
	// ErrDanglingReference is returned when a reference in the input does not resolve.
	ErrDanglingReference = errors.New("dangling reference")
	// ErrInvalidAccessType is returned for access values other than public and private.
	ErrInvalidAccessType = errors.New("invalid access type")
)

// Code returns the error code for err. It returns "" for nil and io.EOF.
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidNamespaceURI):
		return ErrCodeInvalidNamespaceURI
	case errors.Is(err, ErrDuplicateIdentity):
		return ErrCodeDuplicateIdentity
	case errors.Is(err, ErrInvalidAccessType):
		return ErrCodeInvalidAccessType
	case errors.Is(err, ErrInvalidVocabularyTerm):
		return ErrCodeInvalidVocabularyTerm
	case errors.Is(err, ErrInvalidFieldType):
		return ErrCodeInvalidFieldType
	case errors.Is(err, ErrUndefinedReference):
		return ErrCodeUndefinedReference
	case errors.Is(err, ErrDanglingReference):
		return ErrCodeDanglingReference
	}

	var parseErr *rdf.ParseError
	if errors.As(err, &parseErr) || errors.Is(err, rdf.ErrUnsupportedFormat) {
		return ErrCodeSyntax
	}
	return ErrCodeUnknown
}

// IdentityError reports an identity rejected by a registry or the assembler.
type IdentityError struct {
	Kind     string // entity kind, e.g. "ComponentDefinition"
	Identity string
	Err      error // ErrDuplicateIdentity or ErrUndefinedReference
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Identity, e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }

// ReferenceError reports a reference in the input that points at nothing.
type ReferenceError struct {
	Identity string // the unresolved identity
	Referrer string // the entity holding the reference
	Field    string // the property used, e.g. "definition"
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%v: %s references %s via %s", ErrDanglingReference, e.Referrer, e.Identity, e.Field)
}

func (e *ReferenceError) Unwrap() error { return ErrDanglingReference }

func accessError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidAccessType, err)
}
