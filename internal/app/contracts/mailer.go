package contracts

import (
	"bhzdravlje-service/internal/pkg/dto/requests"
	"context"
)

// MailerService queues outgoing emails for the mail worker.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
