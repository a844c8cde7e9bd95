package model

import "time"

type NotificationType string

const (
	NotificationBookingChange NotificationType = "booking_change"
	NotificationReschedule    NotificationType = "reschedule"
	NotificationNewBooking    NotificationType = "new_booking"
	NotificationCancelled     NotificationType = "cancelled"
	NotificationPayment       NotificationType = "payment"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
}

type NotificationView struct {
	Notification
	TimeAgo string `json:"time_ago"`
	Read    bool   `json:"read"`
}

type NotificationFeed struct {
	Items       []NotificationView `json:"items"`
	UnreadCount int                `json:"unread_count"`
}
