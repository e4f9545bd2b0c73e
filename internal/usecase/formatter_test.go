package usecase

import (
	"reflect"
	"testing"

	"alarm-notifier/internal/domain/model"
)

func TestFormat_CloudWatchAlarm(t *testing.T) {
	f := NewFormatter(FormatterConfig{
		Fields:       []string{"AlarmName", "NewStateValue", "Region"},
		Title:        "CloudWatch Alarm Triggered",
		StatusField:  "NewStateValue",
		StatusColors: map[string]string{"ALARM": "danger"},
	})

	got := f.Format(model.Event{
		"AlarmName":     "CPUHigh",
		"NewStateValue": "ALARM",
		"Region":        "us-east-1",
	})

	want := model.Notification{
		Title: "CloudWatch Alarm Triggered",
		Fields: []model.NotificationField{
			{Name: "Alarmname", Value: "`CPUHigh`"},
			{Name: "Newstatevalue", Value: "`ALARM`"},
			{Name: "Region", Value: "`us-east-1`"},
		},
		Color: "danger",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestFormat_NoFieldsConfigured(t *testing.T) {
	f := NewFormatter(FormatterConfig{
		Title:        "ignored",
		StatusField:  "NewStateValue",
		StatusColors: map[string]string{"ALARM": "danger"},
	})

	for _, event := range []model.Event{nil, {}, {"NewStateValue": "ALARM"}} {
		got := f.Format(event)
		if !reflect.DeepEqual(got, model.Notification{Text: NoFieldsWarning}) {
			t.Errorf("Format(%v): got %+v", event, got)
		}
	}
}

func TestFormat_ColorMiss(t *testing.T) {
	f := NewFormatter(FormatterConfig{
		Fields:       []string{"NewStateValue"},
		StatusField:  "NewStateValue",
		StatusColors: map[string]string{"ALARM": "danger"},
	})

	if got := f.Format(model.Event{"NewStateValue": "OK"}); got.Color != "" {
		t.Errorf("expected no color, got %q", got.Color)
	}
}

func TestFormat_ColorUsesMappedStatus(t *testing.T) {
	f := NewFormatter(FormatterConfig{
		Fields:        []string{"state"},
		StatusField:   "state",
		StatusMapping: map[string]string{"ALARM": "firing"},
		StatusColors:  map[string]string{"FIRING": "#e01e5a"},
	})

	got := f.Format(model.Event{"state": "alarm"})
	if got.Color != "#e01e5a" {
		t.Errorf("color: got %q", got.Color)
	}
	if got.Fields[0].Value != "`alarm`" {
		t.Errorf("field value must be the raw value, got %q", got.Fields[0].Value)
	}
}

func TestFormat_UnresolvedFields(t *testing.T) {
	f := NewFormatter(FormatterConfig{
		Fields:      []string{"Trigger.MetricName"},
		Title:       "t",
		StatusField: "NewStateValue",
	})

	got := f.Format(model.Event{"Trigger": "flat"})
	if got.Fields[0].Name != "Trigger Metricname" || got.Fields[0].Value != "`N/A`" {
		t.Errorf("unexpected field: %+v", got.Fields[0])
	}
}

func TestFieldLabel(t *testing.T) {
	tests := map[string]string{
		"AlarmName":          "Alarmname",
		"Trigger.MetricName": "Trigger Metricname",
		"detail.state.value": "Detail State Value",
		"state_reason":       "State_Reason",
		"http2xx":            "Http2Xx",
		"":                   "",
	}
	for in, want := range tests {
		if got := FieldLabel(in); got != want {
			t.Errorf("FieldLabel(%q): got %q, want %q", in, got, want)
		}
	}
}
