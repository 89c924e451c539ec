package event

import "encoding/json"

// DecodePayload converts an event payload into T. Payloads published
// in-process already carry the right struct and pass straight through;
// payloads that arrived serialized (generic maps from JSON, dead-letter
// replays) take a marshal round-trip instead.
func DecodePayload[T any](payload any) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var decoded T
	data, err := json.Marshal(payload)
	if err != nil {
		return decoded, err
	}
	return decoded, json.Unmarshal(data, &decoded)
}
