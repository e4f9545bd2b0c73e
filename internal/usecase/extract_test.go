package usecase

import (
	"encoding/json"
	"testing"

	"alarm-notifier/internal/domain/model"
)

func TestExtractField(t *testing.T) {
	event := model.Event{
		"AlarmName": "CPUHigh",
		"Trigger": map[string]any{
			"MetricName": "CPUUtilization",
			"Threshold":  json.Number("80.5"),
			"Dimensions": []any{map[string]any{"name": "InstanceId"}},
			"Empty":      nil,
		},
	}

	tests := []struct {
		path string
		want any
	}{
		{path: "AlarmName", want: "CPUHigh"},
		{path: "Trigger.MetricName", want: "CPUUtilization"},
		{path: "Trigger.Threshold", want: json.Number("80.5")},
		{path: "Trigger.Empty", want: nil},
		{path: "Missing", want: NotAvailable},
		{path: "Trigger.Missing", want: NotAvailable},
		{path: "AlarmName.Length", want: NotAvailable},
		{path: "Trigger.Dimensions.0", want: NotAvailable},
		{path: "", want: NotAvailable},
	}

	for _, tt := range tests {
		if got := ExtractField(event, tt.path); got != tt.want {
			t.Errorf("ExtractField(%q): got %#v, want %#v", tt.path, got, tt.want)
		}
	}
}

func TestExtractField_NonObjectRoot(t *testing.T) {
	for _, root := range []any{nil, "text", []any{"a"}, json.Number("1")} {
		if got := ExtractField(root, "a"); got != NotAvailable {
			t.Errorf("ExtractField(%#v): got %#v", root, got)
		}
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: "ALARM", want: "ALARM"},
		{in: json.Number("80.50"), want: "80.50"},
		{in: float64(3), want: "3"},
		{in: true, want: "true"},
		{in: nil, want: "null"},
		{in: map[string]any{"a": "b"}, want: `{"a":"b"}`},
		{in: []any{"x", json.Number("1")}, want: `["x",1]`},
		{in: 7, want: "7"},
	}
	for _, tt := range tests {
		if got := DisplayValue(tt.in); got != tt.want {
			t.Errorf("DisplayValue(%#v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
