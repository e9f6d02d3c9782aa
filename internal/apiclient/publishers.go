package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"shelfdesk/pkg/domain"
)

// ListPublishers fetches all publishers.
func (c *Client) ListPublishers(ctx context.Context) ([]domain.Publisher, error) {
	return call[[]domain.Publisher](ctx, c, http.MethodGet, "/publisher/", nil, nil, "publishers")
}

// GetPublisher fetches one publisher by key.
func (c *Client) GetPublisher(ctx context.Context, id string) (domain.Publisher, error) {
	return call[domain.Publisher](ctx, c, http.MethodGet, "/publisher/"+url.PathEscape(id), nil, nil, "publisher")
}

// CreatePublisher submits a new publisher.
func (c *Client) CreatePublisher(ctx context.Context, publisher domain.Publisher) (domain.Publisher, error) {
	return call[domain.Publisher](ctx, c, http.MethodPost, "/publisher/create-publisher", nil, publisher, "createdPublisher", "publisher")
}

// UpdatePublisher replaces the publisher identified by its key.
func (c *Client) UpdatePublisher(ctx context.Context, publisher domain.Publisher) (domain.Publisher, error) {
	return call[domain.Publisher](ctx, c, http.MethodPut, "/publisher/update-publisher/"+url.PathEscape(publisher.ID), nil, publisher, "updatedPublisher", "publisher")
}

// DeletePublisher removes a publisher by key.
func (c *Client) DeletePublisher(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/publisher/delete-publisher/"+url.PathEscape(id), nil, nil)
	return err
}
