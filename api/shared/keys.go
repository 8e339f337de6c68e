/* keys.go
 * Helpers for walking decoded JSON (map[string]interface{}) without panicking on missing keys
 * Authors: owl-scraper contributors
 */

package shared

// HasPath checks if the nested keys exist in obj
// Preconditions: Receives a decoded JSON object and at least one key
// Postconditions: Returns true if every key resolves in sequence, false as soon as one is absent.
// Returns a UsageError if obj is not a map or no keys were given
func HasPath(obj interface{}, keys ...string) (bool, error) {
	current, ok := obj.(map[string]interface{})
	if !ok {
		return false, &UsageError{Reason: "HasPath expects a map as its first argument"}
	}
	if len(keys) == 0 {
		return false, &UsageError{Reason: "HasPath expects at least one key"}
	}

	for i, key := range keys {
		value, ok := current[key]
		if !ok {
			return false, nil
		}
		if i == len(keys)-1 {
			break
		}
		// A non-map in the middle of the path means the rest can't exist
		current, ok = value.(map[string]interface{})
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Dig returns the value at the nested keys, or nil and false if the path does not exist
func Dig(obj map[string]interface{}, keys ...string) (interface{}, bool) {
	var value interface{} = obj
	for _, key := range keys {
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil, false
		}
		value, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return value, true
}

// DigMap returns the object at the nested keys
func DigMap(obj map[string]interface{}, keys ...string) (map[string]interface{}, bool) {
	value, ok := Dig(obj, keys...)
	if !ok {
		return nil, false
	}
	m, ok := value.(map[string]interface{})
	return m, ok
}

// DigString returns the string at the nested keys. JSON null and non-strings report false
func DigString(obj map[string]interface{}, keys ...string) (string, bool) {
	value, ok := Dig(obj, keys...)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// DigList returns the array at the nested keys
func DigList(obj map[string]interface{}, keys ...string) ([]interface{}, bool) {
	value, ok := Dig(obj, keys...)
	if !ok {
		return nil, false
	}
	l, ok := value.([]interface{})
	return l, ok
}

// DigNumber returns the number at the nested keys. encoding/json decodes every number as float64
func DigNumber(obj map[string]interface{}, keys ...string) (float64, bool) {
	value, ok := Dig(obj, keys...)
	if !ok {
		return 0, false
	}
	n, ok := value.(float64)
	return n, ok
}
