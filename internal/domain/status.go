package domain

// Enrollment statuses as seen by callers. Unenrolled is the absence of a
// row and never stored.
const (
	StatusConfirmed  = "confirmed"
	StatusWaitlisted = "waitlisted"
	StatusCancelled  = "cancelled"
)

// Notification types recorded by the audit log.
const (
	NotificationSignup    = "signup_confirmation"
	NotificationPromotion = "waitlist_promotion"
)

// DefaultCapacity is the number of confirmed seats of a generated event.
const DefaultCapacity = 20
