package catalog

import (
	"log/slog"

	"shelfdesk/internal/apiclient"
	"shelfdesk/internal/notify"
	"shelfdesk/internal/store"
	"shelfdesk/pkg/domain"
)

// Categories orchestrates catalog operations for categories.
type Categories struct {
	resource[domain.Category]
}

// NewCategories wires the category orchestrator to its collaborators.
func NewCategories(api *apiclient.Client, st *store.Store[domain.Category], n notify.Notifier, log *slog.Logger) *Categories {
	if log == nil {
		log = slog.Default()
	}
	return &Categories{
		resource: resource[domain.Category]{
			name:   "category",
			label:  "Category",
			plural: "Categories",
			store:  st,
			api: transport[domain.Category]{
				list:   api.ListCategories,
				get:    api.GetCategory,
				create: api.CreateCategory,
				update: api.UpdateCategory,
				remove: api.DeleteCategory,
			},
			notify:   n,
			log:      log,
			validate: domain.Category.Validate,
		},
	}
}
