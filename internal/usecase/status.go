package usecase

import "strings"

// MapStatus extracts the status field from event, normalizes it (upper case,
// trimmed) and translates it through mapping. Mapping keys must already be
// normalized; unmapped statuses are returned in their normalized form.
func MapStatus(event any, statusField string, mapping map[string]string) string {
	status := NormalizeStatus(DisplayValue(ExtractField(event, statusField)))
	if mapped, ok := mapping[status]; ok {
		return mapped
	}
	return status
}

// NormalizeStatus upper-cases and trims a status value.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}
