// Package companies provides access to the Bonusly company endpoints.
package companies

import (
	"context"

	"github.com/madninja/bonusly-go/pkg/client"
	"github.com/madninja/bonusly-go/pkg/models"
)

// UpdateRequest changes company-wide settings.
type UpdateRequest struct {
	Name           string   `json:"name,omitempty"`
	Hashtags       []string `json:"hashtags,omitempty"`
	DefaultHashtag string   `json:"default_hashtag,omitempty"`
}

// Show returns the company the access token belongs to.
func Show(ctx context.Context, c *client.Client) (models.Company, error) {
	return client.Get[models.Company](ctx, c, "/companies/show", nil)
}

// Update changes company-wide settings.
func Update(ctx context.Context, c *client.Client, req UpdateRequest) (models.Company, error) {
	return client.Put[models.Company](ctx, c, "/companies/update", req)
}
