package domain

import "encoding/json"

// Records carry an open schema: unrecognized top-level keys are kept verbatim
// in a string→raw-JSON sidecar and re-emitted on marshal. The typed core never
// grows implicit fields; anything unknown lives in Extra.

func keySet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// extraFields decodes data into a raw map and strips every known key, leaving
// only the dynamic fields. Returns nil when nothing unknown remains.
func extraFields(data []byte, known map[string]struct{}) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k := range all {
		if _, ok := known[k]; ok {
			delete(all, k)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// mergeExtras copies src entries over dst, allocating dst when needed.
// Used by partial updates: dynamic fields merge key-by-key, they never wipe
// each other out.
func mergeExtras(dst, src map[string]json.RawMessage) map[string]json.RawMessage {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]json.RawMessage, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
