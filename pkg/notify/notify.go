package notify

import (
	"context"
	"log"
)

// ErrorCodeUnregistered is returned by push providers when a device token is
// no longer valid. The caller should clear the stored token.
const ErrorCodeUnregistered = "UNREGISTERED"

// Message is a push notification payload.
type Message struct {
	DeviceToken string
	Title       string
	Body        string
	Data        map[string]string
}

// Result reports the outcome of a single send.
type Result struct {
	Success   bool
	ErrorCode string
}

// Sender delivers push notifications. Implementations must never block the
// caller on retries; a failed send is reported through Result, not an error.
// The error return is reserved for transport-level failures.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// LogSender writes notifications to the process log instead of a push
// provider. Used in development and when no provider is configured.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (LogSender) Send(ctx context.Context, msg Message) (Result, error) {
	if msg.DeviceToken == "" {
		return Result{Success: false, ErrorCode: ErrorCodeUnregistered}, nil
	}
	log.Printf("notify: to=%s title=%q body=%q", msg.DeviceToken, msg.Title, msg.Body)
	return Result{Success: true}, nil
}
