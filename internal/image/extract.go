package image

import "fmt"

// The Leonardo client hands responses back as untyped JSON; these helpers
// pull the handful of fields the pipeline needs out of them.

func objectField(m map[string]any, key string) (map[string]any, error) {
	v, ok := m[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is missing object %q", key)
	}
	return v, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("response is missing string %q", key)
	}
	return v, nil
}

func sliceField(m map[string]any, key string) ([]any, error) {
	v, ok := m[key].([]any)
	if !ok {
		return nil, fmt.Errorf("response is missing array %q", key)
	}
	return v, nil
}
