package catalog

import (
	"log/slog"

	"shelfdesk/internal/apiclient"
	"shelfdesk/internal/notify"
	"shelfdesk/internal/store"
	"shelfdesk/pkg/domain"
)

// Users orchestrates operations for storefront accounts, keyed by account
// number.
type Users struct {
	resource[domain.User]
}

// NewUsers wires the user orchestrator to its collaborators.
func NewUsers(api *apiclient.Client, st *store.Store[domain.User], n notify.Notifier, log *slog.Logger) *Users {
	if log == nil {
		log = slog.Default()
	}
	return &Users{
		resource: resource[domain.User]{
			name:   "user",
			label:  "User",
			plural: "Users",
			store:  st,
			api: transport[domain.User]{
				list:   api.ListUsers,
				get:    api.GetUser,
				create: api.CreateUser,
				update: api.UpdateUser,
				remove: api.DeleteUser,
			},
			notify:   n,
			log:      log,
			validate: domain.User.Validate,
		},
	}
}
