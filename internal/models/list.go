package models

import (
	"encoding/json"
	"strings"
)

// StringList decodes either a JSON array of strings or a single
// comma-separated string. Admin forms submit multi-value fields both ways.
type StringList []string

// UnmarshalJSON implements lenient decoding for list-valued fields.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	*l = items
	return nil
}
