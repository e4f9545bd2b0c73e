package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"alarm-notifier/internal/domain/model"
)

// NotAvailable is returned when a field path cannot be resolved.
const NotAvailable = "N/A"

const pathSeparator = "."

// ExtractField resolves a dotted path such as "Trigger.Dimensions" against a
// nested JSON object. It descends only through objects; any missing key or
// non-object step yields NotAvailable. The raw leaf value is returned.
func ExtractField(root any, path string) any {
	value := root
	for _, key := range strings.Split(path, pathSeparator) {
		obj, ok := asObject(value)
		if !ok {
			return NotAvailable
		}
		next, ok := obj[key]
		if !ok {
			return NotAvailable
		}
		value = next
	}
	return value
}

func asObject(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case model.Event:
		return typed, true
	}
	return nil, false
}

// DisplayValue renders an extracted value as text.
func DisplayValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case map[string]any, []any:
		if b, err := json.Marshal(typed); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(value)
}
