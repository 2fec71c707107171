// Package webhooks provides access to the Bonusly webhooks endpoints.
package webhooks

import (
	"context"
	"net/url"

	"github.com/madninja/bonusly-go/pkg/client"
	"github.com/madninja/bonusly-go/pkg/models"
	"github.com/madninja/bonusly-go/pkg/pagination"
)

// CreateRequest registers a new webhook.
type CreateRequest struct {
	URL        string             `json:"url"`
	EventTypes []models.EventType `json:"event_types,omitempty"`
}

// UpdateRequest changes an existing webhook.
type UpdateRequest struct {
	URL        string             `json:"url,omitempty"`
	EventTypes []models.EventType `json:"event_types,omitempty"`
}

// All returns every webhook as an automatically paged sequence.
//
// Do not pass `limit` or `skip` parameters; they are owned by the
// pager.
func All(c *client.Client, pageSize int, params url.Values) (*pagination.Pager[models.Webhook], error) {
	return pagination.Collection[models.Webhook](c, "/webhooks", params, pageSize)
}

// Create registers a new webhook.
func Create(ctx context.Context, c *client.Client, req CreateRequest) (models.Webhook, error) {
	return client.Post[models.Webhook](ctx, c, "/webhooks", req)
}

// Update changes an existing webhook.
func Update(ctx context.Context, c *client.Client, id string, req UpdateRequest) (models.Webhook, error) {
	return client.Put[models.Webhook](ctx, c, "/webhooks/"+url.PathEscape(id), req)
}

// Delete removes a webhook.
func Delete(ctx context.Context, c *client.Client, id string) (models.Webhook, error) {
	return client.Delete[models.Webhook](ctx, c, "/webhooks/"+url.PathEscape(id))
}
