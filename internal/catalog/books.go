package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shelfdesk/internal/apiclient"
	"shelfdesk/internal/filter"
	"shelfdesk/internal/notify"
	"shelfdesk/internal/store"
	"shelfdesk/pkg/domain"
)

// Books orchestrates catalog operations for books. On top of the shared
// CRUD lifecycle it carries the stock-adjustment operation and the filtered
// view the storefront renders.
type Books struct {
	resource[domain.Book]
	stock func(ctx context.Context, id string, quantity int) (domain.Book, error)
}

// NewBooks wires the book orchestrator to its collaborators.
func NewBooks(api *apiclient.Client, st *store.Store[domain.Book], n notify.Notifier, log *slog.Logger) *Books {
	if log == nil {
		log = slog.Default()
	}
	return &Books{
		resource: resource[domain.Book]{
			name:   "book",
			label:  "Book",
			plural: "Books",
			store:  st,
			api: transport[domain.Book]{
				list:   api.ListBooks,
				get:    api.GetBookByName,
				create: api.CreateBook,
				update: api.UpdateBook,
				remove: api.DeleteBook,
			},
			notify:   n,
			log:      log,
			validate: domain.Book.Validate,
		},
		stock: api.UpdateStock,
	}
}

// GetByName fetches and selects a single book by display name.
func (b *Books) GetByName(ctx context.Context, name string) (domain.Book, error) {
	return b.Get(ctx, name)
}

// AdjustStock shifts a book's stock by quantity (may be negative) and
// commits the result as an in-place update.
func (b *Books) AdjustStock(ctx context.Context, id string, quantity int) (domain.Book, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Book{}, b.blocked(fmt.Errorf("%w: book", ErrMissingKey))
	}
	b.store.Dispatch(store.UpdateRequested[domain.Book]{})
	updated, err := b.stock(ctx, id, quantity)
	if err != nil {
		return domain.Book{}, b.fail("update stock of", func(m string) {
			b.store.Dispatch(store.UpdateRejected[domain.Book]{Message: m})
		}, err)
	}
	const msg = "Stock updated"
	b.store.Dispatch(store.UpdateCommitted[domain.Book]{Item: updated, Message: msg})
	b.succeed("update stock of", msg)
	return updated, nil
}

// Visible applies the filter engine to the current snapshot. It is
// recomputed on every call and never mutates the store.
func (b *Books) Visible() []domain.Book {
	snap := b.store.Snapshot()
	return filter.View(snap.Collection, snap.Query, filter.FromFacets(snap.Facets))
}
