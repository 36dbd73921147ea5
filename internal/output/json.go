package output

import "encoding/json"

// ToJSON renders a dashboard, or any page of it, as indented JSON.
func ToJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
