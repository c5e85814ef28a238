package output

import "context"

// NotificationSink delivers enrollment notifications. Calls happen after
// the state change commits; errors are logged by the caller and never
// undo the change.
type NotificationSink interface {
	NotifySignup(ctx context.Context, userID string, eventID uint, status, guestName string) error
	NotifyPromotion(ctx context.Context, userID string, eventID uint) error
}
