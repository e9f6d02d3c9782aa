package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"shelfdesk/pkg/domain"
)

// ListUsers fetches all storefront accounts.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	return call[[]domain.User](ctx, c, http.MethodGet, "/user/", nil, nil, "users")
}

// GetUser fetches one account by account number.
func (c *Client) GetUser(ctx context.Context, accountNumber string) (domain.User, error) {
	return call[domain.User](ctx, c, http.MethodGet, "/user/"+url.PathEscape(accountNumber), nil, nil, "user")
}

// CreateUser submits a new account.
func (c *Client) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	return call[domain.User](ctx, c, http.MethodPost, "/user/create-user", nil, user, "createdUser", "user")
}

// UpdateUser replaces the account identified by its account number.
func (c *Client) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	return call[domain.User](ctx, c, http.MethodPut, "/user/update-user/"+url.PathEscape(user.AccountNumber), nil, user, "updatedUser", "user")
}

// DeleteUser removes an account by account number.
func (c *Client) DeleteUser(ctx context.Context, accountNumber string) error {
	_, err := c.do(ctx, http.MethodDelete, "/user/delete-user/"+url.PathEscape(accountNumber), nil, nil)
	return err
}
