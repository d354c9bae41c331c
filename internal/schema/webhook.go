package schema

func webhookReference() Schema {
	return Object(Props{
		"id":       String(),
		"codename": String(),
	}).Describe("An object with an id or codename property referencing another entity. Codename is preferred.")
}

func webhookTrigger(entity string, actions []string, filters Schema) Schema {
	props := Props{
		"enabled": Boolean().Describe("Whether " + entity + " triggers are enabled for this webhook"),
		"actions": Array(Object(Props{"action": Enum(actions...)}, "action")).
			Describe("Actions that trigger the webhook. If not specified, all actions trigger."),
	}
	if filters != nil {
		props["filters"] = filters
	}
	return Object(props, "enabled")
}

// WebhookInput is the body of add-webhook-mapi.
func WebhookInput() Props {
	refs := func(desc string) Schema { return Array(webhookReference()).Describe(desc) }

	contentItemActions := Object(Props{
		"action":        Enum("published", "unpublished", "created", "changed", "metadata_changed", "deleted", "workflow_step_changed"),
		"transition_to": Array(Object(Props{
			"workflow_identifier": webhookReference(),
			"step_identifier":     webhookReference(),
		}, "workflow_identifier", "step_identifier")).Describe("Workflow transitions that trigger workflow_step_changed"),
	}, "action")

	triggers := Object(Props{
		"slot": Enum("published", "preview").Describe("The API slot to monitor. The published slot cannot be combined with " +
			"created, changed, metadata_changed, deleted or workflow_step_changed content item actions."),
		"events":       Enum("all", "specific").Describe("all triggers for every event in the slot; specific uses the per-entity configuration"),
		"asset":        webhookTrigger("asset", []string{"created", "changed", "metadata_changed", "deleted"}, nil),
		"content_type": webhookTrigger("content type", []string{"created", "changed", "deleted"},
			Object(Props{"content_types": refs("Content types to watch")})),
		"taxonomy": webhookTrigger("taxonomy",
			[]string{"created", "metadata_changed", "deleted", "term_created", "term_changed", "term_deleted", "terms_moved"},
			Object(Props{"taxonomies": refs("Taxonomy groups to watch")})),
		"language": webhookTrigger("language", []string{"created", "changed", "deleted"},
			Object(Props{"languages": refs("Languages to watch")})),
		"content_item": Object(Props{
			"enabled": Boolean().Describe("Whether content item triggers are enabled for this webhook"),
			"actions": Array(contentItemActions),
			"filters": Object(Props{
				"collections":   refs("Collections to watch"),
				"content_types": refs("Content types to watch"),
				"languages":     refs("Languages to watch"),
			}),
		}, "enabled"),
	}, "slot", "events")

	return Props{
		"name":   String().MinLength(1).Describe("Display name of the webhook"),
		"url":    String().Format("uri").Describe("Endpoint URL receiving notifications"),
		"secret": String().MinLength(1).Describe("Secret used to sign webhook requests. " +
			"Generate it with a cryptographically secure random generator."),
		"enabled": Boolean().Describe("Whether the webhook is enabled (default true)"),
		"headers": Array(Object(Props{
			"key":   String(),
			"value": String(),
		}, "key", "value")).Describe("Custom HTTP headers sent with webhook requests"),
		"delivery_triggers": triggers,
	}
}
