package deadletter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"alarm-notifier/internal/domain/model"
	"alarm-notifier/internal/domain/ports"
)

// SQSAPI is the subset of the SQS client used here.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSQueue publishes undeliverable events to an SQS queue.
type SQSQueue struct {
	client   SQSAPI
	queueURL string
	logger   ports.Logger
}

var _ ports.DeadLetterQueue = (*SQSQueue)(nil)

// NewSQSQueue creates a dead-letter queue backed by the queue at queueURL.
func NewSQSQueue(client SQSAPI, queueURL string, logger ports.Logger) *SQSQueue {
	return &SQSQueue{client: client, queueURL: queueURL, logger: logger}
}

// Publish sends letter as a JSON message body.
func (q *SQSQueue) Publish(ctx context.Context, letter model.DeadLetter) error {
	body, err := json.Marshal(letter)
	if err != nil {
		return fmt.Errorf("marshal dead letter: %w", err)
	}

	out, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"failure_reason": {
				DataType:    aws.String("String"),
				StringValue: aws.String(letter.Reason),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send dead letter: %w", err)
	}

	q.logger.Info(ctx, "dead letter published", "message_id", aws.ToString(out.MessageId))
	return nil
}
