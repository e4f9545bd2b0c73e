package usecase

import (
	"strings"
	"unicode"

	"alarm-notifier/internal/domain/model"
)

// NoFieldsWarning is sent instead of a structured message when no fields are configured.
const NoFieldsWarning = "⚠️ No fields specified in MESSAGE_FIELDS env."

// FormatterConfig controls how events are rendered into notifications.
// Table keys are expected to be upper-cased and trimmed.
type FormatterConfig struct {
	Fields        []string
	Title         string
	StatusField   string
	StatusMapping map[string]string
	StatusColors  map[string]string
}

// Formatter turns events into notifications. It performs no I/O.
type Formatter struct {
	cfg FormatterConfig
}

// NewFormatter constructs a Formatter.
func NewFormatter(cfg FormatterConfig) *Formatter {
	return &Formatter{cfg: cfg}
}

// Format renders event according to the configured fields, title and status tables.
func (f *Formatter) Format(event model.Event) model.Notification {
	if len(f.cfg.Fields) == 0 {
		return model.Notification{Text: NoFieldsWarning}
	}

	status := MapStatus(event, f.cfg.StatusField, f.cfg.StatusMapping)

	fields := make([]model.NotificationField, 0, len(f.cfg.Fields))
	for _, path := range f.cfg.Fields {
		fields = append(fields, model.NotificationField{
			Name:   FieldLabel(path),
			Value:  "`" + DisplayValue(ExtractField(event, path)) + "`",
			Inline: false,
		})
	}

	return model.Notification{
		Title:  f.cfg.Title,
		Fields: fields,
		Color:  f.statusColor(status),
	}
}

func (f *Formatter) statusColor(status string) string {
	if len(f.cfg.StatusColors) == 0 {
		return ""
	}
	return f.cfg.StatusColors[strings.ToUpper(status)]
}

// FieldLabel derives a human label from a dotted path: dots become spaces and
// every word is title-cased. A word starts after any non-letter, so
// "Trigger.MetricName" becomes "Trigger Metricname" and "state_value"
// becomes "State_Value".
func FieldLabel(path string) string {
	label := strings.ReplaceAll(path, pathSeparator, " ")

	var b strings.Builder
	b.Grow(len(label))
	prevLetter := false
	for _, r := range label {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && prevLetter:
			b.WriteRune(unicode.ToLower(r))
		case isLetter:
			b.WriteRune(unicode.ToTitle(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
