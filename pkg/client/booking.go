package client

import (
	"context"
	"net/url"

	"handyhub/pkg/model"
)

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *BookingClient) Create(ctx context.Context, in model.BookingInput) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/bookings", in)
}

// CreateOnce sends key as the idempotency key so a retried submission
// replays the first response instead of creating a second booking.
func (c *BookingClient) CreateOnce(ctx context.Context, key string, in model.BookingInput) (*Response, error) {
	return c.httpClient.POSTWithHeaders(ctx, "/api/v1/bookings", in, map[string]string{IdempotencyHeader: key})
}

func (c *BookingClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/bookings")
}

func (c *BookingClient) GetByID(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/bookings/"+url.PathEscape(id))
}

func (c *BookingClient) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*Response, error) {
	return c.httpClient.PATCH(ctx, "/api/v1/bookings/"+url.PathEscape(id)+"/status", model.StatusChange{Status: string(status)})
}

func (c *BookingClient) CalendarDay(ctx context.Context, date model.DateKey) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/calendar/days/"+url.PathEscape(string(date)))
}
