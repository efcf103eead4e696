package cookiesession

import (
	"encoding/base64"
	"encoding/json"
)

// encodeSession serializes session values as base64(JSON). It fails only for
// values JSON cannot represent (e.g. cycles), which is a caller error.
func encodeSession(values map[string]any) (string, error) {
	raw, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// decodeSession is the inverse of encodeSession. Malformed input of any kind
// — bad base64, bad JSON, a non-object payload — uniformly maps to absent;
// it is never surfaced as an error.
func decodeSession(value string) (map[string]any, bool) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, false
	}
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false
	}
	if values == nil {
		return nil, false
	}
	return values, true
}
