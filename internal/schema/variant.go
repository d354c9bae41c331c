package schema

// VariantElement is one element value of a language variant upsert.
func VariantElement() Schema {
	return Object(Props{
		"element":          Reference().Describe("Element by id, codename, or external id"),
		"value":            Any().Describe("Element value. Text, rich text, url slug and custom: string. Number: number. Date & time: ISO 8601 string. Asset, linked items, subpages, taxonomy, multiple choice: array of references."),
		"components":       Array(Any()).Describe("Components referenced from rich text"),
		"mode":             Enum("autogenerated", "custom").Describe("url_slug generation mode"),
		"display_timezone": String().Describe("date_time display timezone"),
		"searchable_value": String().Describe("custom element searchable value"),
	}, "element")
}

// VariantInput is the argument set of upsert-language-variant-mapi.
func VariantInput() Props {
	return Props{
		"itemId":           String().Describe("Content item ID"),
		"languageId":       String().Describe("Language ID"),
		"elements":         Array(VariantElement()).Describe("Element values to set. Elements not listed are left unchanged."),
		"workflow_step_id": String().Describe("Workflow step to move the variant to (optional)"),
	}
}
