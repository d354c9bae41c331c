package schema

// ElementTypes lists the element types a content type or snippet can hold.
var ElementTypes = []string{
	"asset", "custom", "date_time", "guidelines", "modular_content", "subpages",
	"multiple_choice", "number", "rich_text", "snippet", "taxonomy", "text", "url_slug",
}

// Element describes one content type element. Type-specific properties such
// as limits, allowed content types or options are passed through as given.
func Element() Schema {
	return Object(Props{
		"type":                  Enum(ElementTypes...).Describe("Element type"),
		"name":                  String().Describe("Display name (not used by guidelines, snippet and url_slug dependencies)"),
		"codename":              String().Describe("Codename (auto-generated if omitted)"),
		"external_id":           String(),
		"guidelines":            String().Describe("Instructions shown to content creators"),
		"is_required":           Boolean(),
		"is_non_localizable":    Boolean(),
		"content_group":         Reference().Describe("Content group the element belongs to (types with groups only)"),
		"options":               Array(Option()).Describe("multiple_choice options"),
		"mode":                  Enum("single", "multiple").Describe("multiple_choice mode"),
		"allowed_content_types": Array(Reference()).Describe("modular_content, subpages and rich_text limitation"),
		"taxonomy_group":        Reference().Describe("taxonomy element source group"),
		"snippet":               Reference().Describe("snippet element source"),
		"depends_on":            DependsOn().Describe("url_slug source element"),
		"source_url":            String().Describe("custom element source URL"),
		"json_parameters":       String().Describe("custom element parameters"),
		"maximum_text_length":   TextLengthLimit(),
		"item_count_limit":      CountLimit(),
		"asset_count_limit":     CountLimit(),
		"validation_regex":      RegexValidation(),
		"default":               Any().Describe("Default value, shape depends on the element type"),
	}, "type").With("additionalProperties", true)
}

// SnippetElement is Element without the kinds a snippet cannot contain.
func SnippetElement() Schema {
	e := Element()
	props := e["properties"].(map[string]any)
	p := make(map[string]any, len(props))
	for k, v := range props {
		if k != "content_group" {
			p[k] = v
		}
	}
	p["type"] = Enum(
		"asset", "custom", "date_time", "guidelines", "modular_content", "subpages",
		"multiple_choice", "number", "rich_text", "taxonomy", "text",
	).Describe("Element type (snippets cannot hold snippet or url_slug elements)")
	return e.With("properties", p)
}

func Option() Schema {
	return Object(Props{
		"name":        String(),
		"codename":    String(),
		"external_id": String(),
	}, "name")
}

func ContentGroup() Schema {
	return Object(Props{
		"name":        String(),
		"codename":    String(),
		"external_id": String(),
	}, "name")
}

func DependsOn() Schema {
	return Object(Props{
		"element": Reference(),
		"snippet": Reference(),
	}, "element")
}

func TextLengthLimit() Schema {
	return Object(Props{
		"value":      Integer(),
		"applies_to": Enum("words", "characters"),
	}, "value", "applies_to")
}

func CountLimit() Schema {
	return Object(Props{
		"value":     Integer(),
		"condition": Enum("at_most", "exactly", "at_least"),
	}, "value", "condition")
}

func RegexValidation() Schema {
	return Object(Props{
		"is_active":          Boolean(),
		"regex":              String(),
		"flags":              String(),
		"validation_message": String(),
	}, "regex")
}

// ContentTypeInput is the body of add-content-type-mapi.
func ContentTypeInput() Props {
	return Props{
		"name":           String().Describe("Display name of the content type"),
		"codename":       String().Describe("Codename (auto-generated if omitted)"),
		"external_id":    String(),
		"content_groups": Array(ContentGroup()).Describe("Content groups; when present every element must name its content_group"),
		"elements":       Array(Element()).Describe("Elements of the content type"),
	}
}

// SnippetInput is the body of add-content-type-snippet-mapi.
func SnippetInput() Props {
	return Props{
		"name":        String().Describe("Display name of the snippet"),
		"codename":    String().Describe("Codename (auto-generated if omitted)"),
		"external_id": String(),
		"elements":    Array(SnippetElement()).Describe("Elements of the snippet"),
	}
}

func idPath(desc string) Schema {
	return String().Describe(desc + " (format: id:{uuid} or codename:{codename} segments)")
}

func movePatch() Schema {
	return Object(Props{
		"op":     Const("move"),
		"path":   idPath("Path to the object"),
		"before": Reference(),
		"after":  Reference(),
	}, "op", "path")
}

func removePatch() Schema {
	return Object(Props{
		"op":   Const("remove"),
		"path": idPath("Path to the item to remove"),
	}, "op", "path")
}

func replacePatch() Schema {
	return Object(Props{
		"op":    Const("replace"),
		"path":  idPath("Path to the property to replace"),
		"value": Any(),
	}, "op", "path", "value")
}

func addIntoPatch(value Schema) Schema {
	return Object(Props{
		"op":     Const("addInto"),
		"path":   idPath("Path where to add the item"),
		"value":  value,
		"before": Reference(),
		"after":  Reference(),
	}, "op", "path", "value")
}

// ContentTypePatchOperations is the operations array of patch-content-type-mapi.
func ContentTypePatchOperations() Schema {
	value := AnyOf(Element(), Option(), ContentGroup(), Reference(), Any())
	return Array(OneOf(movePatch(), addIntoPatch(value), removePatch(), replacePatch())).
		MinItems(1).
		Describe("JSON Patch-like operations applied in order. Call get-patch-guide first.")
}

// SnippetPatchOperations is the operations array of patch-type-snippet-mapi.
func SnippetPatchOperations() Schema {
	value := AnyOf(SnippetElement(), Option(), Reference(), Any())
	return Array(OneOf(movePatch(), addIntoPatch(value), removePatch(), replacePatch())).
		MinItems(1).
		Describe("JSON Patch-like operations applied in order. Call get-patch-guide first.")
}
