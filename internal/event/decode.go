package event

import "encoding/json"

// DecodePayload returns the payload as T. Payloads published on the in-process
// bus are already typed; maps (for example from a decoded JSON event) are
// converted through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
