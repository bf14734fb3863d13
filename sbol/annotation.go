package sbol

// QName is a namespace-qualified XML name.
type QName struct {
	Namespace string
	LocalName string
	Prefix    string
}

// IRI returns the full IRI the name stands for.
func (q QName) IRI() string { return q.Namespace + q.LocalName }

func (q QName) String() string {
	if q.Prefix == "" {
		return q.IRI()
	}
	return q.Prefix + ":" + q.LocalName
}

// Annotation is an extension property outside the SBOL vocabulary.
type Annotation struct {
	Name  QName
	Value AnnotationValue
}

// AnnotationValue holds exactly one of a literal, a URI, or a nested annotation.
// Datatype and Lang only apply to literals.
type AnnotationValue struct {
	Literal  string
	Datatype string
	Lang     string
	URI      string
	Nested   *NestedAnnotation
}

// NestedAnnotation is a resource described inline under an annotation. An
// empty URI is written as a blank node. Name is the resource's RDF type.
type NestedAnnotation struct {
	Name        QName
	URI         string
	Annotations []Annotation
}

// LiteralAnnotation builds a plain literal annotation.
func LiteralAnnotation(name QName, value string) Annotation {
	return Annotation{Name: name, Value: AnnotationValue{Literal: value}}
}

// URIAnnotation builds an annotation pointing at a resource.
func URIAnnotation(name QName, uri string) Annotation {
	return Annotation{Name: name, Value: AnnotationValue{URI: uri}}
}

// NestedAnnotationValue builds an annotation holding a nested resource.
func NestedAnnotationValue(name QName, nested *NestedAnnotation) Annotation {
	return Annotation{Name: name, Value: AnnotationValue{Nested: nested}}
}

// Find returns the first annotation named name.
func (i *Identified) Find(name QName) (Annotation, bool) {
	for _, a := range i.Annotations {
		if a.Name.IRI() == name.IRI() {
			return a, true
		}
	}
	return Annotation{}, false
}
