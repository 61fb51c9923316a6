package domain

import "time"

// NotificationKind names the event that produced a notification
type NotificationKind string

const (
	NotificationStudentApplied  NotificationKind = "student.applied"
	NotificationStudentAssigned NotificationKind = "student.assigned"
	NotificationMessageReceived NotificationKind = "message.received"
)

// Notification is an in-app notice for either account kind. The
// recipient is addressed the same way principals are: an id plus the
// student/staff discriminator.
type Notification struct {
	ID                 string           `json:"id"`
	RecipientID        string           `json:"recipient_id"`
	RecipientIsStudent bool             `json:"recipient_is_student"`
	Kind               NotificationKind `json:"kind"`
	Payload            string           `json:"payload,omitempty"`
	Read               bool             `json:"read"`
	CreatedAt          time.Time        `json:"created_at"`
}
