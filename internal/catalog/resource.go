// Package catalog contains the request orchestrators: one per entity kind,
// each driving its store through the request lifecycle, feeding the
// normalizing client and the classifier, and emitting exactly one
// notification per terminal outcome.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"shelfdesk/internal/classify"
	"shelfdesk/internal/notify"
	"shelfdesk/internal/store"
)

// ErrMissingKey reports an operation invoked without the entity key it
// needs. Like field validation, it blocks before any network call.
var ErrMissingKey = errors.New("entity key required")

// transport binds one entity kind's network calls.
type transport[E store.Entity] struct {
	list   func(context.Context) ([]E, error)
	get    func(context.Context, string) (E, error)
	create func(context.Context, E) (E, error)
	update func(context.Context, E) (E, error)
	remove func(context.Context, string) error
}

// resource is the uniform request lifecycle shared by every entity kind:
// dispatch Requested, one network call, then exactly one terminal dispatch
// plus one notification, success or failure.
type resource[E store.Entity] struct {
	name     string // lowercase kind for classifier templates
	label    string // capitalized singular for user messages
	plural   string
	store    *store.Store[E]
	api      transport[E]
	notify   notify.Notifier
	log      *slog.Logger
	validate func(E) error
}

// fail classifies err, records it via dispatch, notifies once, and returns
// the original error unmodified so callers can branch on it.
func (r *resource[E]) fail(op string, dispatch func(message string), err error) error {
	res := classify.Classify(r.name, op, err)
	dispatch(res.Message)
	r.notify.Notify(notify.SeverityError, res.Message)
	r.log.Warn("request failed", "entity", r.name, "op", op, "kind", res.Kind, "err", err)
	return err
}

func (r *resource[E]) succeed(op, message string) {
	r.notify.Notify(notify.SeveritySuccess, message)
	r.log.Debug("request done", "entity", r.name, "op", op)
}

// blocked reports a locally rejected submission: one error notification, no
// lifecycle dispatch, no network call, and nothing for the classifier.
func (r *resource[E]) blocked(err error) error {
	r.notify.Notify(notify.SeverityError, err.Error())
	return err
}

// List refreshes the collection from the server.
func (r *resource[E]) List(ctx context.Context) ([]E, error) {
	r.store.Dispatch(store.ListRequested[E]{})
	items, err := r.api.list(ctx)
	if err != nil {
		return nil, r.fail("load", func(m string) {
			r.store.Dispatch(store.ListRejected[E]{Message: m})
		}, err)
	}
	msg := r.plural + " loaded"
	r.store.Dispatch(store.ListCommitted[E]{Items: items, Message: msg})
	r.succeed("load", msg)
	return items, nil
}

// Get fetches and selects a single entity by key.
func (r *resource[E]) Get(ctx context.Context, key string) (E, error) {
	var zero E
	if strings.TrimSpace(key) == "" {
		return zero, r.blocked(fmt.Errorf("%w: %s", ErrMissingKey, r.name))
	}
	r.store.Dispatch(store.GetOneRequested[E]{})
	item, err := r.api.get(ctx, key)
	if err != nil {
		return zero, r.fail("load", func(m string) {
			r.store.Dispatch(store.GetOneRejected[E]{Message: m})
		}, err)
	}
	msg := r.label + " loaded"
	r.store.Dispatch(store.GetOneCommitted[E]{Item: item, Message: msg})
	r.succeed("load", msg)
	return item, nil
}

// Create submits a new entity. Field validation runs first and blocks the
// request locally; it never reaches the classifier.
func (r *resource[E]) Create(ctx context.Context, candidate E) (E, error) {
	var zero E
	if err := r.validate(candidate); err != nil {
		return zero, r.blocked(err)
	}
	r.store.Dispatch(store.CreateRequested[E]{})
	created, err := r.api.create(ctx, candidate)
	if err != nil {
		return zero, r.fail("create", func(m string) {
			r.store.Dispatch(store.CreateRejected[E]{Message: m})
		}, err)
	}
	msg := r.label + " created"
	r.store.Dispatch(store.CreateCommitted[E]{Item: created, Message: msg})
	r.succeed("create", msg)
	return created, nil
}

// Update replaces the entity identified by its key.
func (r *resource[E]) Update(ctx context.Context, item E) (E, error) {
	var zero E
	if strings.TrimSpace(item.Key()) == "" {
		return zero, r.blocked(fmt.Errorf("%w: %s", ErrMissingKey, r.name))
	}
	if err := r.validate(item); err != nil {
		return zero, r.blocked(err)
	}
	r.store.Dispatch(store.UpdateRequested[E]{})
	updated, err := r.api.update(ctx, item)
	if err != nil {
		return zero, r.fail("update", func(m string) {
			r.store.Dispatch(store.UpdateRejected[E]{Message: m})
		}, err)
	}
	msg := r.label + " updated"
	r.store.Dispatch(store.UpdateCommitted[E]{Item: updated, Message: msg})
	r.succeed("update", msg)
	return updated, nil
}

// Delete removes the entity with the given key.
func (r *resource[E]) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return r.blocked(fmt.Errorf("%w: %s", ErrMissingKey, r.name))
	}
	r.store.Dispatch(store.DeleteRequested[E]{})
	if err := r.api.remove(ctx, key); err != nil {
		return r.fail("delete", func(m string) {
			r.store.Dispatch(store.DeleteRejected[E]{Message: m})
		}, err)
	}
	msg := r.label + " deleted"
	r.store.Dispatch(store.DeleteCommitted[E]{Key: key, Message: msg})
	r.succeed("delete", msg)
	return nil
}

// Search records new free-text input.
func (r *resource[E]) Search(query string) {
	r.store.Dispatch(store.QueryChanged[E]{Query: query})
}

// SetFacet records one facet selection; an empty value clears the facet.
func (r *resource[E]) SetFacet(name, value string) {
	r.store.Dispatch(store.FacetChanged[E]{Name: name, Value: value})
}

// ClearSelection drops the focused entity, e.g. on navigation away.
func (r *resource[E]) ClearSelection() {
	r.store.Dispatch(store.SelectionCleared[E]{})
}

// Store exposes the underlying store for readers.
func (r *resource[E]) Store() *store.Store[E] { return r.store }
