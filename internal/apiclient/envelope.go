package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEnvelope reports a success body that matched neither a known envelope
// key nor the expected raw shape. Surfacing it beats silently rendering a
// zero-valued record.
var ErrEnvelope = errors.New("unrecognized response envelope")

// decodeEnvelope extracts the payload from a server success body. The server
// nests payloads under operation-specific keys ("books", "createdBook", ...);
// candidates are tried in order, then the raw body itself, and decoding fails
// fast when none fit.
func decodeEnvelope[T any](body []byte, keys ...string) (T, error) {
	var out T
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err == nil {
		for _, key := range keys {
			payload, ok := raw[key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(payload, &out); err != nil {
				return out, fmt.Errorf("%w: key %q: %v", ErrEnvelope, key, err)
			}
			return out, nil
		}
	}

	// Raw-body fallback for endpoints that skip the envelope. Unknown
	// fields are rejected so a wrong shape cannot degrade into a zero
	// value.
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("%w: tried keys %v", ErrEnvelope, keys)
	}
	return out, nil
}
