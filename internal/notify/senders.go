package notify

import (
	"context"
	"log"
)

// Outbound delivery is handled by external providers; these senders hand the
// payload off and report transport errors only. None of them are retried.

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, mobile, message string) error
}

type VoiceCaller interface {
	PlaceCall(ctx context.Context, mobile, script string) error
}

// Log-backed senders stand in for the provider integrations.

type LogEmailSender struct{}

func (LogEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	log.Printf("email to %s: %s", to, subject)
	return nil
}

type LogSMSSender struct{}

func (LogSMSSender) SendSMS(ctx context.Context, mobile, message string) error {
	log.Printf("sms to %s: %s", mobile, message)
	return nil
}

type LogVoiceCaller struct{}

func (LogVoiceCaller) PlaceCall(ctx context.Context, mobile, script string) error {
	log.Printf("voice call to %s", mobile)
	return nil
}
