package store

import "handyhub/pkg/model"

// Store owns every record collection of the marketplace. Each test or
// process builds its own; nothing here is global.
type Store struct {
	Bookings      *Collection[model.Booking]
	JobPosts      *Collection[model.JobPost]
	Appointments  *Collection[model.AppointmentRequest]
	Threads       *Collection[model.Thread]
	Messages      *Collection[model.Message]
	Businesses    *Collection[model.Business]
	Providers     *Collection[model.Provider]
	JobListings   *Collection[model.JobListing]
	Notifications *Collection[model.Notification]
}

func New() *Store {
	return &Store{
		Bookings:      NewCollection(func(b model.Booking) string { return b.ID }),
		JobPosts:      NewCollection(func(p model.JobPost) string { return p.ID }),
		Appointments:  NewCollection(func(a model.AppointmentRequest) string { return a.ID }),
		Threads:       NewCollection(func(t model.Thread) string { return t.ID }),
		Messages:      NewCollection(func(m model.Message) string { return m.ID }),
		Businesses:    NewCollection(func(b model.Business) string { return b.ID }),
		Providers:     NewCollection(func(p model.Provider) string { return p.ID }),
		JobListings:   NewCollection(func(l model.JobListing) string { return l.ID }),
		Notifications: NewCollection(func(n model.Notification) string { return n.ID }),
	}
}
