package sbol

import "github.com/geoknoesis/sbol-go/rdf"

// Namespaces always declared on written documents.
const (
	NamespaceSBOL    = "http://sbols.org/v2#"
	NamespacePROV    = "http://www.w3.org/ns/prov#"
	NamespaceRDF     = rdf.RDFNamespace
	NamespaceDCTerms = "http://purl.org/dc/terms/"
)

var fixedNamespaces = map[string]string{
	"sbol":    NamespaceSBOL,
	"prov":    NamespacePROV,
	"rdf":     NamespaceRDF,
	"dcterms": NamespaceDCTerms,
}

func sbolTerm(local string) rdf.IRI { return rdf.IRI{Value: NamespaceSBOL + local} }

var (
	predPersistentIdentity = sbolTerm("persistentIdentity")
	predDisplayID          = sbolTerm("displayId")
	predVersion            = sbolTerm("version")
	predWasDerivedFrom     = rdf.IRI{Value: NamespacePROV + "wasDerivedFrom"}
	predTitle              = rdf.IRI{Value: NamespaceDCTerms + "title"}
	predDescription        = rdf.IRI{Value: NamespaceDCTerms + "description"}

	predElements = sbolTerm("elements")
	predEncoding = sbolTerm("encoding")

	predType            = sbolTerm("type")
	predRole            = sbolTerm("role")
	predSequence        = sbolTerm("sequence")
	predComponent       = sbolTerm("component")
	predAccess          = sbolTerm("access")
	predDefinition      = sbolTerm("definition")
	predMapsTo          = sbolTerm("mapsTo")
	predRoleIntegration = sbolTerm("roleIntegration")
	predRefinement      = sbolTerm("refinement")
	predLocal           = sbolTerm("local")
	predRemote          = sbolTerm("remote")

	predSequenceAnnotation       = sbolTerm("sequenceAnnotation")
	predSequenceAnnotationLegacy = sbolTerm("SequenceAnnotation")
	predLocation                 = sbolTerm("location")
	predStart                    = sbolTerm("start")
	predEnd                      = sbolTerm("end")
	predAt                       = sbolTerm("at")
	predOrientation              = sbolTerm("orientation")

	predSequenceConstraint       = sbolTerm("sequenceConstraint")
	predSequenceConstraintLegacy = sbolTerm("SequenceConstraint")
	predRestriction              = sbolTerm("restriction")
	predSubject                  = sbolTerm("subject")
	predObject                   = sbolTerm("object")

	predSource    = sbolTerm("source")
	predLanguage  = sbolTerm("language")
	predFramework = sbolTerm("framework")

	predModel               = sbolTerm("model")
	predFunctionalComponent = sbolTerm("functionalComponent")
	predModule              = sbolTerm("module")
	predInteraction         = sbolTerm("interaction")
	predDirection           = sbolTerm("direction")
	predParticipation       = sbolTerm("participation")
	predParticipant         = sbolTerm("participant")

	predMember = sbolTerm("member")
)

var (
	typeSequence            = sbolTerm("Sequence")
	typeComponentDefinition = sbolTerm("ComponentDefinition")
	typeComponent           = sbolTerm("Component")
	typeMapsTo              = sbolTerm("MapsTo")
	typeSequenceAnnotation  = sbolTerm("SequenceAnnotation")
	typeRange               = sbolTerm("Range")
	typeCut                 = sbolTerm("Cut")
	typeGenericLocation     = sbolTerm("GenericLocation")
	typeSequenceConstraint  = sbolTerm("SequenceConstraint")
	typeModel               = sbolTerm("Model")
	typeModuleDefinition    = sbolTerm("ModuleDefinition")
	typeFunctionalComponent = sbolTerm("FunctionalComponent")
	typeModule              = sbolTerm("Module")
	typeInteraction         = sbolTerm("Interaction")
	typeParticipation       = sbolTerm("Participation")
	typeCollection          = sbolTerm("Collection")
)

// knownPredicates is the whole SBOL vocabulary the reader understands. Flat
// sources use it to tell references from annotation objects.
var knownPredicates = iriSet(
	rdf.RDFType,
	predPersistentIdentity, predDisplayID, predVersion, predWasDerivedFrom, predTitle, predDescription,
	predElements, predEncoding,
	predType, predRole, predSequence, predComponent, predAccess, predDefinition,
	predMapsTo, predRoleIntegration, predRefinement, predLocal, predRemote,
	predSequenceAnnotation, predSequenceAnnotationLegacy, predLocation, predStart, predEnd, predAt, predOrientation,
	predSequenceConstraint, predSequenceConstraintLegacy, predRestriction, predSubject, predObject,
	predSource, predLanguage, predFramework,
	predModel, predFunctionalComponent, predModule, predInteraction, predDirection, predParticipation, predParticipant,
	predMember,
)

// identifiedPredicates are consumed on every entity, generic top levels
// included.
var identifiedPredicates = []rdf.IRI{
	rdf.RDFType,
	predPersistentIdentity, predDisplayID, predVersion, predWasDerivedFrom, predTitle, predDescription,
}

// consumedPredicates lists, per SBOL type, the predicates its reader turns
// into fields. Any other predicate on an entity of that type, SBOL or not,
// is kept as an Annotation.
var consumedPredicates = map[string]map[string]struct{}{
	typeSequence.Value:            kindSet(predElements, predEncoding),
	typeComponentDefinition.Value: kindSet(predType, predRole, predSequence, predComponent, predSequenceAnnotation, predSequenceAnnotationLegacy, predSequenceConstraint, predSequenceConstraintLegacy),
	typeComponent.Value:           kindSet(predAccess, predDefinition, predMapsTo, predRole, predRoleIntegration),
	typeMapsTo.Value:              kindSet(predLocal, predRemote, predRefinement),
	typeSequenceAnnotation.Value:  kindSet(predComponent, predRole, predLocation),
	typeRange.Value:               kindSet(predOrientation, predStart, predEnd),
	typeCut.Value:                 kindSet(predOrientation, predAt),
	typeGenericLocation.Value:     kindSet(predOrientation),
	typeSequenceConstraint.Value:  kindSet(predRestriction, predSubject, predObject),
	typeModel.Value:               kindSet(predSource, predLanguage, predFramework),
	typeModuleDefinition.Value:    kindSet(predRole, predModel, predFunctionalComponent, predModule, predInteraction),
	typeFunctionalComponent.Value: kindSet(predAccess, predDefinition, predMapsTo, predDirection),
	typeModule.Value:              kindSet(predDefinition, predMapsTo),
	typeInteraction.Value:         kindSet(predType, predParticipation),
	typeParticipation.Value:       kindSet(predRole, predParticipant),
	typeCollection.Value:          kindSet(predMember),
}

// genericPredicates are consumed on a GenericTopLevel.
var genericPredicates = kindSet()

func kindSet(preds ...rdf.IRI) map[string]struct{} {
	return iriSet(append(append([]rdf.IRI(nil), identifiedPredicates...), preds...)...)
}

// containmentPredicates link a parent to an entity it owns.
var containmentPredicates = iriSet(
	predComponent, predMapsTo, predSequenceAnnotation, predSequenceAnnotationLegacy, predLocation,
	predSequenceConstraint, predSequenceConstraintLegacy, predFunctionalComponent, predModule,
	predInteraction, predParticipation,
)

var knownTypes = iriSet(
	typeSequence, typeComponentDefinition, typeComponent, typeMapsTo, typeSequenceAnnotation,
	typeRange, typeCut, typeGenericLocation, typeSequenceConstraint, typeModel, typeModuleDefinition,
	typeFunctionalComponent, typeModule, typeInteraction, typeParticipation, typeCollection,
)

var topLevelTypes = iriSet(
	typeSequence, typeComponentDefinition, typeModel, typeModuleDefinition, typeCollection,
)

func iriSet(iris ...rdf.IRI) map[string]struct{} {
	out := make(map[string]struct{}, len(iris))
	for _, iri := range iris {
		out[iri.Value] = struct{}{}
	}
	return out
}
