package slack

import "alarm-notifier/internal/domain/model"

// WebhookMessage is the incoming-webhook wire payload.
type WebhookMessage struct {
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a legacy message attachment.
type Attachment struct {
	Pretext string  `json:"pretext"`
	Fields  []Field `json:"fields"`
	Color   string  `json:"color,omitempty"`
}

// Field is a titled value inside an attachment.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// NewWebhookMessage converts a notification into the wire payload. Titles
// are rendered in bold.
func NewWebhookMessage(notification model.Notification) WebhookMessage {
	if notification.IsTextOnly() {
		return WebhookMessage{Text: notification.Text}
	}

	return WebhookMessage{
		Attachments: []Attachment{
			{
				Pretext: "*" + notification.Title + "*",
				Fields:  convertFields(notification.Fields),
				Color:   notification.Color,
			},
		},
	}
}

func convertFields(fields []model.NotificationField) []Field {
	result := make([]Field, 0, len(fields))
	for _, field := range fields {
		result = append(result, Field{
			Title: field.Name,
			Value: field.Value,
			Short: field.Inline,
		})
	}
	return result
}
