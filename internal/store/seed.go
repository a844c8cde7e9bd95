package store

import (
	"fmt"
	"time"

	"handyhub/pkg/model"
)

const DemoConsumerID = "consumer-1"

// NewSeeded returns a store preloaded with the demo marketplace. Relative
// timestamps (today's messages, notification ages) are anchored at now.
func NewSeeded(now time.Time, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	s := New()

	for _, b := range seedBookings() {
		s.Bookings.Append(b)
	}
	for _, p := range seedJobPosts() {
		s.JobPosts.Append(p)
	}
	for _, a := range seedAppointments(loc) {
		s.Appointments.Append(a)
	}
	businesses := seedBusinesses()
	rates := []float64{45, 60, 55}
	for i, b := range businesses {
		s.Businesses.Append(b)
		rate := rates[i%len(rates)]
		s.Providers.Append(model.ProviderFromBusiness(b, &rate))
	}
	for _, l := range seedJobListings() {
		s.JobListings.Append(l)
	}
	threads := seedThreads(now, loc)
	for _, t := range threads {
		s.Threads.Append(t)
		for _, m := range seedMessages(t) {
			s.Messages.Append(m)
		}
	}
	for _, n := range seedNotifications(now) {
		s.Notifications.Append(n)
	}
	return s
}

func seedBookings() []model.Booking {
	return []model.Booking{
		{
			ID:            "1",
			ClientName:    "Melissa Shayfer",
			Address:       "3839 Scadlock Lane",
			Date:          "2026-01-25",
			Time:          "1:00 PM - 2:00 PM",
			Price:         88,
			PaymentMethod: model.PaymentBankTransfer,
			Status:        model.BookingIncomplete,
			JobTitle:      "Gardening",
		},
		{
			ID:            "2",
			ClientName:    "John Smith",
			Address:       "123 Main St",
			Date:          "2026-01-28",
			Time:          "10:00 AM - 11:00 AM",
			Price:         120,
			PaymentMethod: model.PaymentVenmo,
			Status:        model.BookingIncomplete,
			JobTitle:      "Lawn Mowing",
		},
	}
}

func budget(v float64) *float64 { return &v }

func seedJobPosts() []model.JobPost {
	return []model.JobPost{
		{
			ID:           "jp1",
			ConsumerID:   DemoConsumerID,
			Title:        "Lawn mowing and edging",
			Description:  "Need regular lawn mowing and edging for a medium-sized yard in Sherman Oaks.",
			Category:     "Gardening",
			LocationText: "Sherman Oaks, CA",
			BudgetMin:    budget(50),
			BudgetMax:    budget(80),
			DueDate:      "2026-02-15",
			Status:       model.JobPostOpen,
			CreatedAt:    time.Date(2026, time.January, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "jp2",
			ConsumerID:   DemoConsumerID,
			Title:        "Interior painting - living room",
			Description:  "Living room and hallway need a fresh coat. Prefer light gray.",
			Category:     "Painting",
			LocationText: "Studio City, CA",
			BudgetMin:    budget(200),
			BudgetMax:    budget(400),
			DueDate:      "2026-02-28",
			Status:       model.JobPostOpen,
			CreatedAt:    time.Date(2026, time.January, 22, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:           "jp3",
			ConsumerID:   DemoConsumerID,
			Title:        "Garden design consultation",
			Description:  "Looking for a landscaper to design a small backyard garden.",
			Category:     "Landscaping",
			LocationText: "Sherman Oaks, CA",
			Status:       model.JobPostFilled,
			CreatedAt:    time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC),
		},
	}
}

func seedAppointments(loc *time.Location) []model.AppointmentRequest {
	return []model.AppointmentRequest{
		{
			ID:           "ar1",
			ConsumerID:   DemoConsumerID,
			ProviderID:   "b1",
			JobID:        "jp1",
			StartTime:    time.Date(2026, time.February, 10, 14, 0, 0, 0, loc),
			EndTime:      time.Date(2026, time.February, 10, 15, 30, 0, 0, loc),
			Note:         "Please bring lawn mower. Gate code 1234.",
			Status:       model.AppointmentPending,
			ProviderName: "Shayfer Gardening LLC",
			CreatedAt:    time.Date(2026, time.January, 25, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "ar2",
			ConsumerID:   DemoConsumerID,
			ProviderID:   "b3",
			StartTime:    time.Date(2026, time.January, 20, 9, 0, 0, 0, loc),
			EndTime:      time.Date(2026, time.January, 20, 10, 0, 0, 0, loc),
			Note:         "Initial consultation",
			Status:       model.AppointmentConfirmed,
			ProviderName: "Green Thumb Landscaping",
			CreatedAt:    time.Date(2026, time.January, 18, 12, 0, 0, 0, time.UTC),
		},
	}
}

func seedBusinesses() []model.Business {
	return []model.Business{
		{
			ID:          "b1",
			Name:        "Shayfer Gardening LLC",
			Description: "Professional lawn care, gardening, and landscaping in the greater LA area. Licensed and insured.",
			Phone:       "(818) 555-0123",
			Email:       "contact@shayfergarden.com",
			Category:    "Gardening",
			Location:    "Sherman Oaks, CA",
			Services:    []string{"Lawn mowing", "Garden design", "Hedge trimming", "Seasonal cleanup"},
		},
		{
			ID:          "b2",
			Name:        "Studio City Paint Co",
			Description: "Residential and commercial painting. Interior, exterior, and touch-ups. Free estimates.",
			Phone:       "(323) 555-0456",
			Email:       "hello@studiocitypaint.com",
			Category:    "Painting",
			Location:    "Studio City, CA",
			Services:    []string{"Interior painting", "Exterior painting", "Cabinet refinishing", "Color consultation"},
		},
		{
			ID:          "b3",
			Name:        "Green Thumb Landscaping",
			Description: "Full-service landscaping and hardscaping. Patios, irrigation, and custom designs.",
			Phone:       "(310) 555-0789",
			Email:       "info@greenthumb.com",
			Category:    "Landscaping",
			Location:    "Sherman Oaks, CA",
			Services:    []string{"Landscape design", "Irrigation", "Hardscaping", "Maintenance"},
		},
	}
}

func seedJobListings() []model.JobListing {
	return []model.JobListing{
		{
			ID:          "1",
			ClientName:  "John",
			Description: "Hi! My name is john, I need work done on my house in Studio city, I am looking for someone well versed in painting. Please reach out if you are available.",
			Location:    "Studio City",
			Category:    "Painting",
		},
		{
			ID:          "2",
			ClientName:  "Stephanie",
			Description: "Hi! My name is Stephanie, I am in need of a gardener for a house that I just moved into. If you are near sherman oaks please reach out for further information!",
			Location:    "Sherman Oaks",
			Category:    "Gardening",
		},
	}
}

func seedThreads(now time.Time, loc *time.Location) []model.Thread {
	y, m, d := now.Date()
	at := func(dayOffset, hour, min int) time.Time {
		return time.Date(y, m, d+dayOffset, hour, min, 0, 0, loc)
	}
	return []model.Thread{
		{ID: "1", Username: "alex.s", Preview: "Thanks for the update!", LastMessageAt: at(0, 10, 30)},
		{ID: "2", Username: "kamran.f", Preview: "See you tomorrow", LastMessageAt: at(0, 9, 15)},
		{ID: "3", Username: "nathan.t", Preview: "Payment sent", LastMessageAt: at(-1, 16, 0)},
		{ID: "4", Username: "noah.f", Preview: "Can we reschedule?", LastMessageAt: at(-1, 11, 0)},
		{ID: "5", Username: "mr.painter", Preview: "Job completed", LastMessageAt: time.Date(2026, time.January, 20, 17, 0, 0, 0, loc)},
		{ID: "6", Username: "pp.f", Preview: "New booking request", LastMessageAt: time.Date(2026, time.January, 18, 8, 0, 0, 0, loc)},
	}
}

func seedMessages(t model.Thread) []model.Message {
	base := []struct {
		text   string
		sender string
		own    bool
	}{
		{"Hi, when can you start?", "client", false},
		{"I can come tomorrow at 1pm", "me", true},
		{"Perfect, see you then!", "client", false},
	}
	out := make([]model.Message, 0, len(base))
	for i, b := range base {
		out = append(out, model.Message{
			ID:       fmt.Sprintf("m-%s-%d", t.ID, i),
			ThreadID: t.ID,
			Text:     b.text,
			SenderID: b.sender,
			SentAt:   t.LastMessageAt.Add(time.Duration(i-len(base)+1) * time.Minute),
			IsOwn:    b.own,
		})
	}
	return out
}

func seedNotifications(now time.Time) []model.Notification {
	return []model.Notification{
		{
			ID:        "1",
			Title:     "Booking rescheduled",
			Message:   "Gardening at 3839 Scadlock Lane (Melissa Shayfer) was moved to Jan 28, 2026.",
			Type:      model.NotificationReschedule,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "2",
			Title:     "New booking",
			Message:   "John Smith requested a lawn mowing at 123 Main St for Jan 28.",
			Type:      model.NotificationNewBooking,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        "3",
			Title:     "Booking change",
			Message:   "Payment status updated for 3839 Scadlock Lane, now marked pending.",
			Type:      model.NotificationBookingChange,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}
