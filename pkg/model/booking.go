package model

type PaymentMethod string

const (
	PaymentVenmo        PaymentMethod = "Venmo"
	PaymentZelle        PaymentMethod = "Zelle"
	PaymentCard         PaymentMethod = "Card"
	PaymentCash         PaymentMethod = "Cash"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

var PaymentMethods = []PaymentMethod{
	PaymentVenmo,
	PaymentZelle,
	PaymentCard,
	PaymentCash,
	PaymentBankTransfer,
}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if m == p {
			return true
		}
	}
	return false
}

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingIncomplete BookingStatus = "incomplete"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

var bookingTransitions = transitions[BookingStatus]{
	BookingPending:    {BookingIncomplete, BookingCompleted, BookingCancelled},
	BookingIncomplete: {BookingCompleted, BookingCancelled},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingIncomplete, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return bookingTransitions.terminal(s)
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return bookingTransitions.allows(s, next)
}

type Booking struct {
	ID            string        `json:"id"`
	ClientName    string        `json:"client_name"`
	Address       string        `json:"address"`
	Date          DateKey       `json:"date"`
	Time          string        `json:"time"`
	Price         float64       `json:"price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        BookingStatus `json:"status"`
	JobTitle      string        `json:"job_title,omitempty"`
}

// BookingInput is the raw form submission; numbers arrive as text.
type BookingInput struct {
	ClientName    string `json:"client_name"`
	Address       string `json:"address"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Price         string `json:"price"`
	PaymentMethod string `json:"payment_method"`
	JobTitle      string `json:"job_title,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
}
