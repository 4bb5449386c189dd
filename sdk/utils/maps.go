package utils

// MergeMaps merges two maps giving precedence to map2.
// If both maps contain the same key and the value is also a map, it merges recursively.
func MergeMaps(map1, map2 map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	// Copy map1 into result
	for k, v := range map1 {
		result[k] = v
	}

	// Merge map2 into result
	for k, v2 := range map2 {
		v1, exists := result[k]
		if exists && isMap(v1) && isMap(v2) {
			result[k] = MergeMaps(v1.(map[string]interface{}), v2.(map[string]interface{}))
			continue
		}
		result[k] = v2
	}

	return result
}

// isMap checks if v is a map[string]interface{}
func isMap(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}
