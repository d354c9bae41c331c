package normalize

const (
	elementsKey = "elements"
	elementKey  = "element"
)

// PruneVariantElements drops element records that hold only their "element"
// reference from every "elements" array reachable from v. An "elements" array
// left empty is omitted from its parent. Entries that are not objects are kept.
//
// Run it after Prune: element values emptied by Prune then leave bare
// references behind, which this pass removes.
func PruneVariantElements(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = PruneVariantElements(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if k != elementsKey {
				out[k] = PruneVariantElements(val)
				continue
			}
			records, isArray := val.([]any)
			if !isArray {
				out[k] = PruneVariantElements(val)
				continue
			}
			kept := make([]any, 0, len(records))
			for _, rec := range records {
				if isBareElementRecord(rec) {
					continue
				}
				kept = append(kept, PruneVariantElements(rec))
			}
			if len(kept) > 0 {
				out[k] = kept
			}
		}
		return out
	default:
		return v
	}
}

func isBareElementRecord(v any) bool {
	rec, ok := v.(map[string]any)
	if !ok || len(rec) != 1 {
		return false
	}
	_, ok = rec[elementKey]
	return ok
}
