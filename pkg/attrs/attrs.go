// Package attrs reads values out of slog-style variadic attribute slices.
package attrs

// ExtractString returns the string value paired with key in a
// [key1, value1, key2, value2, ...] attribute slice. It returns "" when the
// key is absent or its value is not a string.
func ExtractString(attributes []any, key string) string {
	for i := 0; i+1 < len(attributes); i += 2 {
		k, ok := attributes[i].(string)
		if !ok || k != key {
			continue
		}
		if v, ok := attributes[i+1].(string); ok {
			return v
		}
	}
	return ""
}
