package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

// now is replaced in tests.
var now = time.Now

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func scheduleInput(verb string) schema.Schema {
	props := itemLanguage()
	props["scheduledTo"] = schema.String().Format("date-time").
		Describe("ISO 8601 date and time to " + verb + " at. Omit to " + verb + " immediately.")
	props["displayTimezone"] = schema.String().
		Describe("Timezone shown in the UI for the schedule, e.g. Europe/Prague. Only valid together with scheduledTo.")
	return schema.Object(props, "itemId", "languageId")
}

func workflowStepTools() []Definition {
	return []Definition{
		{
			Name:        ToolDeleteLanguageVariant,
			Description: "Delete Kontent.ai language variant from Management API",
			Input:       schema.Object(itemLanguage(), "itemId", "languageId"),
			Operation:   "Language Variant Deletion",
			Run: func(ctx context.Context, c Call) (any, error) {
				path, err := pathFrom(c.Args, "items/%s/variants/%s", "itemId", "languageId")
				if err != nil {
					return nil, err
				}
				deleted, err := send(ctx, c.API, http.MethodDelete, path, nil)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"message": fmt.Sprintf("Language variant '%s' of content item '%s' deleted successfully",
						c.Args.String("languageId"), c.Args.String("itemId")),
					"deletedVariant": deleted,
				}, nil
			},
		},
		{
			Name:        ToolCreateVariantVersion,
			Description: "Create new version of Kontent.ai variant",
			Input:       schema.Object(itemLanguage(), "itemId", "languageId"),
			Operation:   "Variant Version Creation",
			Run: func(ctx context.Context, c Call) (any, error) {
				path, err := pathFrom(c.Args, "items/%s/variants/%s/new-version", "itemId", "languageId")
				if err != nil {
					return nil, err
				}
				res, err := send(ctx, c.API, http.MethodPut, path, nil)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"message": fmt.Sprintf("Successfully created new version of language variant '%s' for content item '%s'",
						c.Args.String("languageId"), c.Args.String("itemId")),
					"result": res,
				}, nil
			},
		},
		{
			Name:        ToolPublishVariant,
			Description: "Publish or schedule Kontent.ai variant",
			Input:       scheduleInput("publish"),
			Operation:   "Publish/Schedule Language Variant",
			Run:         publishVariant,
		},
		{
			Name:        ToolUnpublishVariant,
			Description: "Unpublish or schedule unpublishing of Kontent.ai variant",
			Input:       scheduleInput("unpublish"),
			Operation:   "Unpublish/Schedule Unpublishing Language Variant",
			Run:         unpublishVariant,
		},
		{
			Name:        ToolChangeVariantWorkflowStep,
			Description: "Change Kontent.ai variant workflow step",
			Input: schema.Object(schema.Props{
				"itemId":         schema.String().Describe("Content item ID"),
				"languageId":     schema.String().Describe("Language ID"),
				"workflowId":     schema.String().Describe("Workflow ID"),
				"workflowStepId": schema.String().Describe("Target workflow step ID"),
			}, "itemId", "languageId", "workflowId", "workflowStepId"),
			Operation: "Workflow Step Change",
			Run:       changeWorkflowStep,
		},
	}
}

// schedule is the parsed scheduling arguments of publish and unpublish.
type schedule struct {
	itemID, languageID string
	at, timezone       string
}

func parseSchedule(a Args, usage string) (schedule, error) {
	s := schedule{
		itemID:     a.String("itemId"),
		languageID: a.String("languageId"),
		at:         a.String("scheduledTo"),
		timezone:   a.String("displayTimezone"),
	}
	if s.itemID == "" || s.languageID == "" {
		return s, errors.New("itemId and languageId are required")
	}
	if s.timezone != "" && s.at == "" {
		return s, fmt.Errorf("The 'displayTimezone' parameter can only be used in combination with 'scheduledTo' parameter for %s.", usage)
	}
	return s, nil
}

func (s schedule) body() any {
	if s.at == "" {
		return nil
	}
	body := map[string]any{"scheduled_to": s.at}
	if s.timezone != "" {
		body["display_timezone"] = s.timezone
	}
	return body
}

func (s schedule) timezoneNote() string {
	if s.timezone == "" {
		return ""
	}
	return fmt.Sprintf(" (timezone: %s)", s.timezone)
}

func (s schedule) result(message, action string) map[string]any {
	nullable := func(v string) any {
		if v == "" {
			return nil
		}
		return v
	}
	return map[string]any{
		"message": message,
		"result": map[string]any{
			"itemId":          s.itemID,
			"languageId":      s.languageID,
			"scheduledTo":     nullable(s.at),
			"displayTimezone": nullable(s.timezone),
			"action":          action,
			"timestamp":       now().UTC().Format(isoMillis),
		},
	}
}

func publishVariant(ctx context.Context, c Call) (any, error) {
	s, err := parseSchedule(c.Args, "scheduled publishing")
	if err != nil {
		return nil, err
	}
	path := apiPath("items/%s/variants/%s/publish", s.itemID, s.languageID)
	if _, err := send(ctx, c.API, http.MethodPut, path, s.body()); err != nil {
		return nil, err
	}
	if s.at != "" {
		return s.result(fmt.Sprintf("Successfully scheduled language variant '%s' for content item '%s' to be published at '%s'%s",
			s.languageID, s.itemID, s.at, s.timezoneNote()), "scheduled"), nil
	}
	return s.result(fmt.Sprintf("Successfully published language variant '%s' for content item '%s'. "+
		"The content is now live and available through Delivery API.", s.languageID, s.itemID), "published"), nil
}

func unpublishVariant(ctx context.Context, c Call) (any, error) {
	s, err := parseSchedule(c.Args, "scheduled unpublishing")
	if err != nil {
		return nil, err
	}
	path := apiPath("items/%s/variants/%s/unpublish-and-archive", s.itemID, s.languageID)
	if _, err := send(ctx, c.API, http.MethodPut, path, s.body()); err != nil {
		return nil, err
	}
	if s.at != "" {
		return s.result(fmt.Sprintf("Successfully scheduled language variant '%s' for content item '%s' to be unpublished at '%s'%s",
			s.languageID, s.itemID, s.at, s.timezoneNote()), "scheduled for unpublishing"), nil
	}
	return s.result(fmt.Sprintf("Successfully unpublished language variant '%s' for content item '%s'. "+
		"The content is no longer available through Delivery API.", s.languageID, s.itemID), "unpublished"), nil
}

func changeWorkflowStep(ctx context.Context, c Call) (any, error) {
	path, err := pathFrom(c.Args, "items/%s/variants/%s/change-workflow", "itemId", "languageId")
	if err != nil {
		return nil, err
	}
	step := c.Args.String("workflowStepId")
	body := map[string]any{
		"workflow_identifier": map[string]any{"id": c.Args.String("workflowId")},
		"step_identifier":     map[string]any{"id": step},
	}
	res, err := send(ctx, c.API, http.MethodPut, path, body)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"message": fmt.Sprintf("Successfully changed workflow step of language variant '%s' for content item '%s' to workflow step '%s'",
			c.Args.String("languageId"), c.Args.String("itemId"), step),
		"result": res,
	}, nil
}
