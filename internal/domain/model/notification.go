package model

// NotificationField represents a labelled value within a notification payload.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic message for downstream notifiers.
//
// A notification either carries a Title with ordered Fields, or only Text
// when there is nothing to render (for example when no fields are configured).
// Color is empty when no color applies.
type Notification struct {
	Title  string
	Text   string
	Fields []NotificationField
	Color  string
}

// IsTextOnly reports whether the notification has no structured content.
func (n Notification) IsTextOnly() bool {
	return len(n.Fields) == 0 && n.Text != ""
}
