// Package normalize reduces decoded JSON responses before they are sent back to
// an agent: empty and default values are removed at every depth, and variant
// element records that carry nothing but their element reference are dropped.
//
// Values are expected in the shape produced by encoding/json when decoding into
// an `any`: nil, bool, json.Number or float64, string, []any and map[string]any.
// Every other Go value is treated as an opaque scalar that is always kept.
//
// The functions never mutate their input; each call allocates fresh containers.
// Recursion depth equals the nesting depth of the input.
package normalize

// RichTextEmptyParagraph is what the rich-text editor stores for an empty
// document. It is the default empty sentinel.
const RichTextEmptyParagraph = "<p><br/></p>"

// Normalizer prunes empty values. The zero value treats only the empty string
// as an empty string value; use New or Default for sentinel support.
type Normalizer struct {
	sentinels map[string]struct{}
}

// New returns a Normalizer that also treats each of sentinels as empty.
func New(sentinels ...string) *Normalizer {
	n := &Normalizer{sentinels: make(map[string]struct{}, len(sentinels))}
	for _, s := range sentinels {
		n.sentinels[s] = struct{}{}
	}
	return n
}

var defaultNormalizer = New(RichTextEmptyParagraph)

// Default returns the shared Normalizer configured with RichTextEmptyParagraph.
func Default() *Normalizer { return defaultNormalizer }

// IsEmptyOrDefault reports whether v carries no information and may be removed.
// Zero numbers and false are significant.
func (n *Normalizer) IsEmptyOrDefault(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		if t == "" {
			return true
		}
		_, ok := n.sentinels[t]
		return ok
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// Prune returns v with all empty values removed at every depth. ok is false
// when nothing survives, including when v itself is empty.
func (n *Normalizer) Prune(v any) (pruned any, ok bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if p, ok := n.Prune(item); ok {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if p, ok := n.Prune(val); ok {
				out[k] = p
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		if n.IsEmptyOrDefault(v) {
			return nil, false
		}
		return v, true
	}
}

// IsEmptyOrDefault uses the Default normalizer.
func IsEmptyOrDefault(v any) bool { return defaultNormalizer.IsEmptyOrDefault(v) }

// Prune uses the Default normalizer.
func Prune(v any) (any, bool) { return defaultNormalizer.Prune(v) }
