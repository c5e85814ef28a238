package database

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"teetime/internal/domain"
	"teetime/internal/ports/output"
)

var _ output.NotificationSink = (*NotificationLog)(nil)

// NotificationLog records every delivery attempt of the wrapped sink in
// notification_log. Recording failures are logged and otherwise ignored.
type NotificationLog struct {
	db   *pgxpool.Pool
	next output.NotificationSink
}

func NewNotificationLog(db *pgxpool.Pool, next output.NotificationSink) *NotificationLog {
	return &NotificationLog{db: db, next: next}
}

func (l *NotificationLog) NotifySignup(ctx context.Context, userID string, eventID uint, status, guestName string) error {
	err := l.next.NotifySignup(ctx, userID, eventID, status, guestName)
	l.record(ctx, domain.NotificationSignup, userID, eventID, status, err)
	return err
}

func (l *NotificationLog) NotifyPromotion(ctx context.Context, userID string, eventID uint) error {
	err := l.next.NotifyPromotion(ctx, userID, eventID)
	l.record(ctx, domain.NotificationPromotion, userID, eventID, domain.StatusConfirmed, err)
	return err
}

func (l *NotificationLog) record(ctx context.Context, kind, userID string, eventID uint, status string, deliveryErr error) {
	var errText string
	if deliveryErr != nil {
		errText = deliveryErr.Error()
	}
	_, err := l.db.Exec(ctx, `
INSERT INTO notification_log (id, user_id, event_id, notification_type, status, error)
VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), userID, int64(eventID), kind, textToPgtype(status), textToPgtype(errText))
	if err != nil {
		log.Printf("❌ Notification log write failed (type=%s, user=%s, event=%d): %v", kind, userID, eventID, err)
	}
}
