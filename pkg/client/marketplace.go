package client

import (
	"context"
	"net/url"

	"handyhub/pkg/model"
)

// MarketplaceClient covers the consumer-facing resources other than bookings.
type MarketplaceClient struct {
	httpClient *HttpClient
}

func NewMarketplaceClient(baseURL string) *MarketplaceClient {
	return &MarketplaceClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *MarketplaceClient) SearchProviders(ctx context.Context, query, location string) (*Response, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if location != "" {
		q.Set("location", location)
	}
	return c.httpClient.GET(ctx, "/api/v1/providers?"+q.Encode())
}

func (c *MarketplaceClient) GetBusiness(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/businesses/"+url.PathEscape(id))
}

func (c *MarketplaceClient) CreateJobPost(ctx context.Context, consumerID string, in model.JobPostInput) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/consumers/"+url.PathEscape(consumerID)+"/job-posts", in)
}

func (c *MarketplaceClient) ListJobPosts(ctx context.Context, consumerID string, status model.JobPostStatus) (*Response, error) {
	path := "/api/v1/consumers/" + url.PathEscape(consumerID) + "/job-posts"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	return c.httpClient.GET(ctx, path)
}

func (c *MarketplaceClient) UpdateJobPostStatus(ctx context.Context, id string, status model.JobPostStatus) (*Response, error) {
	return c.httpClient.PATCH(ctx, "/api/v1/job-posts/"+url.PathEscape(id)+"/status", model.StatusChange{Status: string(status)})
}

func (c *MarketplaceClient) RequestAppointment(ctx context.Context, consumerID string, in model.AppointmentInput) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/consumers/"+url.PathEscape(consumerID)+"/appointments", in)
}

func (c *MarketplaceClient) AppointmentBoard(ctx context.Context, consumerID string) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/consumers/"+url.PathEscape(consumerID)+"/appointments")
}

func (c *MarketplaceClient) StartThread(ctx context.Context, contact string) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/threads", model.StartThreadInput{Contact: contact})
}

func (c *MarketplaceClient) SendMessage(ctx context.Context, threadID, text string) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/threads/"+url.PathEscape(threadID)+"/messages", model.MessageInput{Text: text})
}

func (c *MarketplaceClient) Messages(ctx context.Context, threadID string) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/threads/"+url.PathEscape(threadID)+"/messages")
}

func (c *MarketplaceClient) Notifications(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/notifications")
}

func (c *MarketplaceClient) MarkAllNotificationsRead(ctx context.Context) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/notifications/read-all", nil)
}
