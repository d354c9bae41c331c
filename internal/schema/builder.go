package schema

import (
	"encoding/json"
	"maps"
)

// Schema is a JSON Schema document under construction. Methods return
// modified copies, so shared fragments can be refined in place of use.
type Schema map[string]any

// Props maps property names to their schemas.
type Props map[string]Schema

func (s Schema) clone() Schema {
	return maps.Clone(s)
}

// With returns a copy of s with key set to v.
func (s Schema) With(key string, v any) Schema {
	c := s.clone()
	if c == nil {
		c = Schema{}
	}
	c[key] = v
	return c
}

// Describe returns a copy of s with a description.
func (s Schema) Describe(desc string) Schema { return s.With("description", desc) }

func (s Schema) MinItems(n int) Schema  { return s.With("minItems", n) }
func (s Schema) MaxItems(n int) Schema  { return s.With("maxItems", n) }
func (s Schema) MinLength(n int) Schema { return s.With("minLength", n) }
func (s Schema) MaxLength(n int) Schema { return s.With("maxLength", n) }
func (s Schema) Format(f string) Schema { return s.With("format", f) }

// Define attaches named definitions that "$ref": "#/definitions/<name>" can
// point at. Only meaningful on the root schema.
func (s Schema) Define(defs map[string]Schema) Schema {
	out := make(map[string]any, len(defs))
	for k, v := range defs {
		out[k] = v
	}
	return s.With("definitions", out)
}

// JSON encodes s. Schemas hold only JSON-compatible values, so encoding
// cannot fail.
func (s Schema) JSON() json.RawMessage {
	data, err := json.Marshal(s)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return data
}

func String() Schema  { return Schema{"type": "string"} }
func Integer() Schema { return Schema{"type": "integer"} }
func Number() Schema  { return Schema{"type": "number"} }
func Boolean() Schema { return Schema{"type": "boolean"} }

// Any accepts every JSON value.
func Any() Schema { return Schema{} }

// Ref points at a definition attached with Define.
func Ref(name string) Schema { return Schema{"$ref": "#/definitions/" + name} }

// Const accepts exactly v.
func Const(v string) Schema { return Schema{"type": "string", "enum": []any{v}} }

// Enum accepts one of values.
func Enum(values ...string) Schema {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Schema{"type": "string", "enum": vs}
}

// Array accepts a list of items.
func Array(items Schema) Schema { return Schema{"type": "array", "items": items} }

// Object accepts an object with props. Names in required must be present.
func Object(props Props, required ...string) Schema {
	p := make(map[string]any, len(props))
	for k, v := range props {
		p[k] = v
	}
	s := Schema{"type": "object", "properties": p}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// Strict forbids properties not listed in an object schema.
func (s Schema) Strict() Schema { return s.With("additionalProperties", false) }

// AnyOf accepts a value matching at least one alternative.
func AnyOf(alts ...Schema) Schema { return Schema{"anyOf": alts} }

// OneOf accepts a value matching exactly one alternative.
func OneOf(alts ...Schema) Schema { return Schema{"oneOf": alts} }
