package schema

// taxonomyTermDef is the definition name of the recursive taxonomy term.
const taxonomyTermDef = "taxonomy_term"

// TaxonomyDefinitions must be attached to any root schema using TaxonomyTerm.
func TaxonomyDefinitions() map[string]Schema {
	return map[string]Schema{
		taxonomyTermDef: Object(Props{
			"name":        String(),
			"codename":    String(),
			"external_id": String(),
			"terms":       Array(Ref(taxonomyTermDef)),
		}, "name"),
	}
}

// TaxonomyTerm is a term with optional nested terms.
func TaxonomyTerm() Schema { return Ref(taxonomyTermDef) }

// TaxonomyGroupInput is the body of add-taxonomy-group-mapi.
func TaxonomyGroupInput() Props {
	return Props{
		"name":        String().Describe("Taxonomy group name"),
		"codename":    String().Describe("Codename (auto-generated if omitted)"),
		"external_id": String().Describe("External ID"),
		"terms":       Array(TaxonomyTerm()).Describe("Taxonomy terms hierarchy"),
	}
}

// TaxonomyPatchOperations is the operations array of patch-taxonomy-group-mapi.
// Operations address terms by reference rather than by path.
func TaxonomyPatchOperations() Schema {
	parent := Reference().Describe("Parent term reference. Omit to add at root level of taxonomy group.")
	addInto := Object(Props{
		"op":        Const("addInto"),
		"reference": parent,
		"value":     TaxonomyTerm(),
		"before":    Reference(),
		"after":     Reference(),
	}, "op", "value")
	move := Object(Props{
		"op":        Const("move"),
		"reference": Reference(),
		"before":    Reference(),
		"after":     Reference(),
		"under":     Reference().Describe("Move as child of this term (tree nesting)"),
	}, "op", "reference")
	remove := Object(Props{
		"op":        Const("remove"),
		"reference": Reference(),
	}, "op", "reference")
	replace := Object(Props{
		"op":        Const("replace"),
		"reference": Reference().Describe("Term reference. Omit when modifying group-level properties (name, codename). " +
			"Required when modifying a specific term."),
		"property_name": Enum("name", "codename", "terms"),
		"value":         AnyOf(String(), Array(TaxonomyTerm())).Describe("New value. String for name/codename, array for terms."),
	}, "op", "property_name", "value")

	return Array(OneOf(addInto, move, remove, replace)).MinItems(1)
}
