package util

import "dario.cat/mergo"

// DeepMerge merges src into a copy of dst and returns the result.
// Nested maps are merged recursively, slices are extended, and scalar
// values from src overwrite those in dst.
func DeepMerge(dst, src map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(dst))
	for k, v := range dst {
		out[k] = v
	}
	if err := mergo.Merge(&out, src, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return nil, err
	}
	return out, nil
}

// MergeInto merges src into dst in place with DeepMerge semantics.
func MergeInto(dst, src map[string]any) error {
	return mergo.Merge(&dst, src, mergo.WithOverride, mergo.WithAppendSlice)
}
