package schema

// CompletionStatuses are the variant completion states filter-variants-mapi accepts.
var CompletionStatuses = []string{"unfinished", "ready", "not_translated", "all_done"}

// FilterVariantsInput is the argument set of filter-variants-mapi.
func FilterVariantsInput() Props {
	return Props{
		"search_phrase":       String().Describe("Search phrase to look for in content"),
		"content_types":       Array(Reference()).MinItems(1).Describe("Content types by id, codename, or external id"),
		"contributors":        Array(UserReference()).MinItems(1).Describe("Users by id or email (not both per user)"),
		"has_no_contributors": Boolean().
			Describe("Filter for content item language variants that have no contributors assigned"),
		"completion_statuses": Array(Enum(CompletionStatuses...)).MinItems(1).
			Describe("Completion statuses to filter by. Not the same as workflow steps; reflects e.g. unfilled required elements"),
		"language":       Reference().Describe("Language by id, codename, or external id (defaults to the default language)"),
		"workflow_steps": Array(Object(Props{
			"workflow_identifier": Reference(),
			"step_identifiers":    Array(Reference()).MinItems(1),
		}, "workflow_identifier", "step_identifiers")).MinItems(1).Describe("Workflows with workflow steps"),
		"taxonomy_groups": Array(Object(Props{
			"taxonomy_identifier":   Reference(),
			"term_identifiers":      Array(Reference()),
			"include_uncategorized": Boolean().Describe("Include variants without any term from this group"),
		}, "taxonomy_identifier")).MinItems(1).Describe("Taxonomy groups with taxonomy terms"),
		"order_by":           Enum("name", "due_date", "last_modified").Describe("Field to order by"),
		"order_direction":    Enum("asc", "desc").Describe("Order direction"),
		"include_content":    Boolean().Describe("Whether to include the full content of language variants in the response"),
		"continuation_token": ContinuationToken(),
	}
}

// BulkVariantsInput is the argument set of bulk-get-items-variants-mapi.
func BulkVariantsInput() Props {
	pair := Object(Props{
		"item":     Reference().Describe("Content item by id, codename, or external id"),
		"language": Reference().Describe("Language by id, codename, or external id"),
	}, "item", "language")
	return Props{
		"variants": Array(pair).MinItems(1).MaxItems(100).
			Describe("Item and language reference pairs to retrieve (max 100). Use filter-variants-mapi to find them first."),
		"continuation_token": ContinuationToken(),
	}
}
