package dto

// SendMessageRequest posts one message into a student conversation.
// StudentID is required from staff senders and ignored for student
// senders, whose own id addresses the conversation.
type SendMessageRequest struct {
	StudentID string `json:"student_id" binding:"omitempty,uuid"`
	Body      string `json:"body" binding:"required,min=1,max=4000"`
}

// CreateDocumentRequest records document metadata for a student
type CreateDocumentRequest struct {
	Name      string `json:"name" binding:"required"`
	MimeType  string `json:"mime_type" binding:"required"`
	SizeBytes int64  `json:"size_bytes" binding:"required,min=1"`
}
