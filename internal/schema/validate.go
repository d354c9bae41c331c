package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
)

// Validator checks tool arguments against a compiled input schema.
type Validator struct {
	schema *gojsonschema.Schema
}

// Compile parses a raw JSON Schema document.
func Compile(raw json.RawMessage) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Validate returns every violation in args, aggregated into one error.
func (v *Validator) Validate(args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}
	doc, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	res, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validate arguments: %w", err)
	}
	if res.Valid() {
		return nil
	}

	var merr *multierror.Error
	for _, e := range res.Errors() {
		merr = multierror.Append(merr, fmt.Errorf("%s: %s", e.Field(), e.Description()))
	}
	merr.ErrorFormat = formatErrors
	return merr
}

// Validate compiles raw and checks args against it.
func Validate(raw json.RawMessage, args map[string]any) error {
	v, err := Compile(raw)
	if err != nil {
		return err
	}
	return v.Validate(args)
}

// Violations lists the individual messages of an error from Validate.
func Violations(err error) []string {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}
	out := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		out[i] = e.Error()
	}
	return out
}

func formatErrors(errs []error) string {
	if len(errs) == 1 {
		return "invalid arguments: " + errs[0].Error()
	}
	msg := fmt.Sprintf("invalid arguments (%d problems):", len(errs))
	for _, e := range errs {
		msg += "\n- " + e.Error()
	}
	return msg
}
