package notify

import (
	"context"
	"log"

	"teetime/internal/ports/output"
)

var _ output.NotificationSink = (*LogSink)(nil)

// LogSink "delivers" notifications by writing them to the process log.
// It is used when no Discord channel is configured.
type LogSink struct {
	renderer *Renderer
}

func NewLogSink(renderer *Renderer) *LogSink {
	return &LogSink{renderer: renderer}
}

func (s *LogSink) NotifySignup(ctx context.Context, userID string, eventID uint, status, guestName string) error {
	msg, err := s.renderer.Signup(ctx, userID, eventID, status, guestName)
	if err != nil {
		return err
	}
	s.print(msg)
	return nil
}

func (s *LogSink) NotifyPromotion(ctx context.Context, userID string, eventID uint) error {
	msg, err := s.renderer.Promotion(ctx, userID, eventID)
	if err != nil {
		return err
	}
	s.print(msg)
	return nil
}

func (s *LogSink) print(msg *Message) {
	log.Printf("✉️ to=%s subject=%q body=%q", msg.Recipient.Email, msg.Title, msg.Body)
}
