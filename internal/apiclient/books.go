package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"shelfdesk/pkg/domain"
)

// ListBooks fetches the full catalog page.
func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return call[[]domain.Book](ctx, c, http.MethodGet, "/book/", nil, nil, "books")
}

// GetBookByName fetches one book by its display name.
func (c *Client) GetBookByName(ctx context.Context, name string) (domain.Book, error) {
	return call[domain.Book](ctx, c, http.MethodGet, "/book/name/"+url.PathEscape(name), nil, nil, "book")
}

// CreateBook submits a new book and returns the server's record of it.
func (c *Client) CreateBook(ctx context.Context, book domain.Book) (domain.Book, error) {
	return call[domain.Book](ctx, c, http.MethodPost, "/book/create-book", nil, book, "createdBook", "book")
}

// UpdateBook replaces the book identified by its key.
func (c *Client) UpdateBook(ctx context.Context, book domain.Book) (domain.Book, error) {
	return call[domain.Book](ctx, c, http.MethodPut, "/book/update-book/"+url.PathEscape(book.ID), nil, book, "updatedBook", "book")
}

// DeleteBook removes a book by key.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/book/delete-book/"+url.PathEscape(id), nil, nil)
	return err
}

// UpdateStock adjusts a book's stock by quantity (may be negative) and
// returns the adjusted record.
func (c *Client) UpdateStock(ctx context.Context, id string, quantity int) (domain.Book, error) {
	query := url.Values{"quantity": {strconv.Itoa(quantity)}}
	return call[domain.Book](ctx, c, http.MethodPatch, "/book/update-stock/"+url.PathEscape(id), query, nil, "updatedBook", "book")
}
