package jsonschema

// Sanitize returns a fresh fragment restricted to the allowed key set, with
// nil-valued keys dropped. The input map is not mutated.
func Sanitize(allowed KeySet, frag map[string]any) map[string]any {
	out := make(map[string]any, len(frag))
	for k, v := range frag {
		if v == nil || !allowed.Has(k) {
			continue
		}
		out[k] = v
	}
	return out
}
