package wirelens

import (
	"encoding/json"
	"fmt"
)

// NoPayloadSentinel is returned when no payload has been recorded yet.
const NoPayloadSentinel = "No Payload Found"

// Format serializes a payload to canonical text: lexicographic key
// ordering and non-finite numbers rejected. A nil payload yields the
// sentinel string.
//
// Normalization already eliminates NaN and infinities, so a serialization
// error here means a value outside the normalized union reached the
// formatter — an internal invariant failure, reported rather than hidden.
func Format(p Payload) (string, error) {
	if p == nil {
		return NoPayloadSentinel, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("payload violates normalization invariant: %w", err)
	}
	return string(data), nil
}
