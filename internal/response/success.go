// Package response builds MCP tool results from Kontent.ai API payloads.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kontentmcp/kontentmcp/internal/normalize"
)

// Undefined is the text sent when there is nothing left to return.
const Undefined = "undefined"

// Responder turns tool payloads into tool results.
type Responder struct {
	normalizer *normalize.Normalizer
	indent     bool
}

// NewResponder returns a Responder using n. indent selects two-space indented
// JSON instead of compact JSON.
func NewResponder(n *normalize.Normalizer, indent bool) *Responder {
	if n == nil {
		n = normalize.Default()
	}
	return &Responder{normalizer: n, indent: indent}
}

var defaultResponder = NewResponder(normalize.Default(), false)

// Success reports data as text. A string is sent verbatim; anything else is
// pruned of empty values and encoded as JSON.
func (r *Responder) Success(data any) *mcp.CallToolResult {
	switch v := data.(type) {
	case nil:
		return textResult(Undefined)
	case string:
		return textResult(v)
	}
	pruned, ok := r.normalizer.Prune(data)
	if !ok {
		return textResult(Undefined)
	}
	return r.encode(pruned)
}

// Variant is Success for language variant payloads: after pruning, element
// records holding only their element reference are removed too.
func (r *Responder) Variant(data any) *mcp.CallToolResult {
	pruned, ok := r.normalizer.Prune(data)
	if !ok {
		return textResult(Undefined)
	}
	return r.encode(normalize.PruneVariantElements(pruned))
}

func (r *Responder) encode(v any) *mcp.CallToolResult {
	text, err := r.marshal(v)
	if err != nil {
		return Error(fmt.Errorf("encode response: %w", err), "Response Encoding")
	}
	return textResult(text)
}

// marshal encodes v without HTML escaping so rich text stays readable.
func (r *Responder) marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}
}

// Success uses a compact-JSON Responder with the default normalizer.
func Success(data any) *mcp.CallToolResult { return defaultResponder.Success(data) }

// Variant uses a compact-JSON Responder with the default normalizer.
func Variant(data any) *mcp.CallToolResult { return defaultResponder.Variant(data) }
