package model

import "time"

type Thread struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Preview       string    `json:"preview"`
	LastMessageAt time.Time `json:"last_message_at"`
	AvatarColor   string    `json:"avatar_color,omitempty"`
}

type Message struct {
	ID       string    `json:"id"`
	ThreadID string    `json:"thread_id"`
	Text     string    `json:"text"`
	SenderID string    `json:"sender_id"`
	SentAt   time.Time `json:"sent_at"`
	IsOwn    bool      `json:"is_own"`
}

type ThreadView struct {
	Thread
	LastMessageLabel string `json:"last_message_label"`
}

type MessageView struct {
	Message
	TimeLabel string `json:"time_label"`
}

type MessageInput struct {
	Text string `json:"text"`
}

// StartThreadInput opens a conversation from a phone number or an invite link.
type StartThreadInput struct {
	Contact string `json:"contact"`
}
