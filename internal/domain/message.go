package domain

import "time"

// Message is one entry in the conversation between a student and a
// staff member. There is no live transport; messages are plain rows
// read back by polling.
type Message struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"student_id"`
	UserID          string    `json:"user_id"`
	SenderIsStudent bool      `json:"sender_is_student"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}
