package schema

// WorkflowStepColors are the colors a workflow step can show in the UI.
var WorkflowStepColors = []string{
	"gray", "red", "rose", "light-purple", "dark-purple", "dark-blue", "light-blue", "sky-blue",
	"mint-green", "persian-green", "dark-green", "light-green", "yellow", "pink", "orange", "brown",
}

// WorkflowInput is the body of add-workflow-mapi and update-workflow-mapi.
func WorkflowInput() Props {
	ids := func(desc string) Schema { return Array(String()).Describe(desc) }

	step := Object(Props{
		"id":             String().Format("uuid").Describe("Step ID (required when updating existing steps)"),
		"name":           String(),
		"codename":       String(),
		"color":          Enum(WorkflowStepColors...),
		"transitions_to": Array(Object(Props{
			"step": Object(Props{
				"codename": String().Describe("Target step codename"),
				"id":       String().Describe("Target step ID (for update operations)"),
			}),
		}, "step")).Describe("Steps this step can transition to"),
		"role_ids": ids("Roles with permissions for this step"),
	}, "name", "codename", "color", "transitions_to", "role_ids")

	return Props{
		"name":     String().Describe("Human-readable name of the workflow"),
		"codename": String().Describe("Codename (auto-generated if omitted)"),
		"scopes":   Array(Object(Props{
			"content_types": Array(Reference()).Describe("Content types this workflow applies to"),
			"collections":   Array(Reference()).Describe("Collections this workflow applies to"),
		}, "content_types")).Describe("Scopes defining which content uses this workflow"),
		"steps":          Array(step).Describe("Custom steps between draft and published"),
		"published_step": Object(Props{
			"id":                          String(),
			"name":                        String(),
			"codename":                    String(),
			"unpublish_role_ids":          ids("Roles that can unpublish content"),
			"create_new_version_role_ids": ids("Roles that can create new versions"),
		}),
		"archived_step": Object(Props{
			"id":       String(),
			"name":     String(),
			"codename": String(),
			"role_ids": ids("Roles that can restore archived content"),
		}),
	}
}
