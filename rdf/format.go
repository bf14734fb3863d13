package rdf

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
	"unicode"
)

// Format identifies RDF serialization formats.
type Format string

const (
	// FormatAuto asks ReadGraph to sniff the input.
	FormatAuto Format = ""
	// FormatRDFXML is RDF/XML, the native SBOL serialization.
	FormatRDFXML Format = "rdfxml"
	// FormatJSONLD is JSON-LD 1.1.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "rdfxml", "rdf", "xml", "sbol":
		return FormatRDFXML, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	return ParseFormat(ext)
}

// DetectFormat peeks at the first non-space byte of r and reports the format.
// The returned reader yields the complete input, peeked bytes included.
func DetectFormat(r io.Reader) (Format, io.Reader, bool) {
	br := bufio.NewReader(r)
	const sampleSize = 512
	sample, _ := br.Peek(sampleSize)
	for _, b := range sample {
		if unicode.IsSpace(rune(b)) {
			continue
		}
		switch b {
		case '<':
			return FormatRDFXML, br, true
		case '{', '[':
			return FormatJSONLD, br, true
		default:
			return FormatAuto, br, false
		}
	}
	return FormatAuto, br, false
}
