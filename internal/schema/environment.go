package schema

// CollectionPatchOperations is the operations array of patch-collections-mapi.
func CollectionPatchOperations() Schema {
	addInto := Object(Props{
		"op":    Const("addInto"),
		"value": Object(Props{
			"name":        String(),
			"codename":    String(),
			"external_id": String(),
		}, "name"),
		"before": Reference(),
		"after":  Reference(),
	}, "op", "value")
	move := Object(Props{
		"op":        Const("move"),
		"reference": Reference(),
		"before":    Reference(),
		"after":     Reference(),
	}, "op", "reference")
	remove := Object(Props{
		"op":        Const("remove"),
		"reference": Reference(),
	}, "op", "reference")
	replace := Object(Props{
		"op":            Const("replace"),
		"reference":     Reference(),
		"property_name": Enum("name"),
		"value":         String(),
	}, "op", "reference", "property_name", "value")

	return Array(OneOf(addInto, move, remove, replace)).MinItems(1)
}

// LanguageInput is the body of add-language-mapi.
func LanguageInput() Props {
	return Props{
		"name":              String().Describe("Display name of the language"),
		"codename":          String().Describe("Codename identifier for the language"),
		"fallback_language": Reference().Describe("Reference to fallback language (by id, codename, or external_id)"),
		"external_id":       String().Describe("External ID for the language"),
		"is_active":         Boolean().Describe("Whether the language is active (defaults to true)"),
	}
}

// LanguagePatchOperations is the operations array of patch-language-mapi.
// Only replace is supported, discriminated by property_name.
func LanguagePatchOperations() Schema {
	replace := func(property string, value Schema) Schema {
		return Object(Props{
			"op":            Const("replace"),
			"property_name": Const(property),
			"value":         value,
		}, "op", "property_name", "value")
	}
	return Array(OneOf(
		replace("codename", String()),
		replace("name", String()),
		replace("fallback_language", Reference()),
	)).MinItems(1).Describe("Replace operations for codename, name, or fallback_language. " +
		"Only active languages can be modified. To activate or deactivate languages, use the Kontent.ai web UI.")
}

// SpaceInput is the body of add-space-mapi.
func SpaceInput() Props {
	return Props{
		"name":        String().Describe("Space name"),
		"codename":    String().Describe("Codename (auto-generated if omitted)"),
		"collections": Array(Reference()).Describe("Collections the space covers"),
	}
}

// SpacePatchOperations is the operations array of patch-space-mapi.
func SpacePatchOperations() Schema {
	replace := func(property string, value Schema) Schema {
		return Object(Props{
			"op":            Const("replace"),
			"property_name": Const(property),
			"value":         value,
		}, "op", "property_name", "value")
	}
	return Array(OneOf(
		replace("name", String()),
		replace("codename", String()),
		replace("collections", Array(Reference())),
	)).MinItems(1)
}
