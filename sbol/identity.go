package sbol

import (
	"regexp"

	"github.com/geoknoesis/sbol-go/rdf"
)

var nonWord = regexp.MustCompile(`[\W_]+`)

// Resolve returns identity unchanged when it is an absolute URI and joins it
// to namespace otherwise. Resolving an absolute URI again is a no-op.
func Resolve(identity, namespace string) string {
	if rdf.IsAbsoluteURI(identity) {
		return identity
	}
	return namespace + identity
}

// PersistentIdentity returns the resolved identity, extended with
// /displayID/version when a version is set.
func PersistentIdentity(identity, displayID, version, namespace string) string {
	uri := Resolve(identity, namespace)
	if version == "" {
		return uri
	}
	return uri + "/" + displayID + "/" + version
}

// DeriveDisplayID replaces every run of non-word characters and underscores
// with a single underscore.
func DeriveDisplayID(identity string) string {
	return nonWord.ReplaceAllString(identity, "_")
}
