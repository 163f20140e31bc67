package service

import "encoding/json"

// encodeStringSlice marshals a slice for a jsonb column, nil for empty input.
func encodeStringSlice(values []string) json.RawMessage {
	if len(values) == 0 {
		return nil
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return encoded
}

// decodeStringSlice unmarshals a jsonb column back into a slice.
func decodeStringSlice(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
