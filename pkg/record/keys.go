package record

// Keys lists the dotted key paths present in a nested record. Nested objects
// recurse with "parent.child"; for an array of objects only the first element
// is sampled, under "parent.key[]". Callers dedupe and sort for display.
func Keys(obj map[string]any) []string {
	return keysWithPrefix(obj, "")
}

func keysWithPrefix(obj map[string]any, prefix string) []string {
	var keys []string
	for key, value := range obj {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		keys = append(keys, fullKey)
		switch v := value.(type) {
		case map[string]any:
			keys = append(keys, keysWithPrefix(v, fullKey)...)
		case []any:
			if len(v) > 0 {
				if first, ok := v[0].(map[string]any); ok {
					keys = append(keys, keysWithPrefix(first, fullKey+"[]")...)
				}
			}
		}
	}
	return keys
}
