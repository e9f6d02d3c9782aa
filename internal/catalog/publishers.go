package catalog

import (
	"log/slog"

	"shelfdesk/internal/apiclient"
	"shelfdesk/internal/notify"
	"shelfdesk/internal/store"
	"shelfdesk/pkg/domain"
)

// Publishers orchestrates catalog operations for publishers.
type Publishers struct {
	resource[domain.Publisher]
}

// NewPublishers wires the publisher orchestrator to its collaborators.
func NewPublishers(api *apiclient.Client, st *store.Store[domain.Publisher], n notify.Notifier, log *slog.Logger) *Publishers {
	if log == nil {
		log = slog.Default()
	}
	return &Publishers{
		resource: resource[domain.Publisher]{
			name:   "publisher",
			label:  "Publisher",
			plural: "Publishers",
			store:  st,
			api: transport[domain.Publisher]{
				list:   api.ListPublishers,
				get:    api.GetPublisher,
				create: api.CreatePublisher,
				update: api.UpdatePublisher,
				remove: api.DeletePublisher,
			},
			notify:   n,
			log:      log,
			validate: domain.Publisher.Validate,
		},
	}
}
