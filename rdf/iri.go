package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateIRI validates an IRI string according to RFC 3987.
// Returns an error if the IRI is invalid, nil otherwise.
//
// Relative IRIs are accepted. Use IsAbsoluteURI when a scheme and
// authority are required.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("%w: empty IRI", ErrInvalidIRI)
	}

	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIRI, err)
	}

	if parsed.Scheme == "" {
		if strings.HasPrefix(iri, "//") {
			return fmt.Errorf("%w: relative IRI without scheme: %s", ErrInvalidIRI, iri)
		}
	} else if !isASCIILetter(parsed.Scheme[0]) {
		return fmt.Errorf("%w: scheme must start with a letter: %s", ErrInvalidIRI, iri)
	}

	for i, r := range iri {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return fmt.Errorf("%w: control character at position %d: %s", ErrInvalidIRI, i, iri)
		}
		if r == '<' || r == '>' {
			return fmt.Errorf("%w: character '%c' at position %d should be percent-encoded: %s", ErrInvalidIRI, r, i, iri)
		}
	}
	return nil
}

// IsAbsoluteURI reports whether value is an absolute URL: a scheme starting
// with a letter, a non-empty host, and no whitespace or control characters.
func IsAbsoluteURI(value string) bool {
	if value == "" || strings.ContainsFunc(value, func(r rune) bool { return r <= ' ' || r == 0x7f }) {
		return false
	}
	if ValidateIRI(value) != nil {
		return false
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// ResolveIRI resolves a relative IRI against a base IRI according to RFC 3986.
func ResolveIRI(base, relative string) string {
	if base == "" {
		return relative
	}
	relURL, err := url.Parse(relative)
	if err != nil {
		return concatIRI(base, relative)
	}
	if relURL.Scheme != "" {
		return relative
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return concatIRI(base, relative)
	}
	return baseURL.ResolveReference(relURL).String()
}

func concatIRI(base, relative string) string {
	if strings.HasSuffix(base, "/") {
		return base + relative
	}
	if lastSlash := strings.LastIndex(base, "/"); lastSlash >= 0 {
		return base[:lastSlash+1] + relative
	}
	return base + "/" + relative
}

// SplitIRI splits an IRI into a namespace ending in '#' or '/' and a local
// name that is a valid XML name, as needed for an element tag.
func SplitIRI(iri string) (string, string, bool) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx <= 0 || idx+1 >= len(iri) {
		return "", "", false
	}
	ns := iri[:idx+1]
	local := iri[idx+1:]
	if !IsNCName(local) {
		return "", "", false
	}
	return ns, local, true
}

// IsNCName reports whether value can be used as a namespace prefix or the
// local part of a qualified XML name.
func IsNCName(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return isASCIILetter(ch) || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
