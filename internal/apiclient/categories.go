package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"shelfdesk/pkg/domain"
)

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return call[[]domain.Category](ctx, c, http.MethodGet, "/category/", nil, nil, "categories")
}

// GetCategory fetches one category by key.
func (c *Client) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	return call[domain.Category](ctx, c, http.MethodGet, "/category/"+url.PathEscape(id), nil, nil, "category")
}

// CreateCategory submits a new category.
func (c *Client) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	return call[domain.Category](ctx, c, http.MethodPost, "/category/create-category", nil, category, "createdCategory", "category")
}

// UpdateCategory replaces the category identified by its key.
func (c *Client) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	return call[domain.Category](ctx, c, http.MethodPut, "/category/update-category/"+url.PathEscape(category.ID), nil, category, "updatedCategory", "category")
}

// DeleteCategory removes a category by key.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/category/delete-category/"+url.PathEscape(id), nil, nil)
	return err
}
