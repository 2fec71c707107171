// Package users provides access to the Bonusly users endpoints.
package users

import (
	"context"
	"net/url"

	"github.com/madninja/bonusly-go/pkg/client"
	"github.com/madninja/bonusly-go/pkg/models"
	"github.com/madninja/bonusly-go/pkg/pagination"
)

// All returns every user as an automatically paged sequence.
//
// Do not pass `limit` or `skip` parameters; they are owned by the
// pager.
//
// See: [List Users](https://bonusly.docs.apiary.io/#reference/0/users/list-users)
func All(c *client.Client, pageSize int, params url.Values) (*pagination.Pager[models.User], error) {
	return pagination.Collection[models.User](c, "/users", params, pageSize)
}

// Get returns a specific user by their id.
//
// See: [Retrieve a User](https://bonusly.docs.apiary.io/#reference/0/users/retrieve-a-user)
func Get(ctx context.Context, c *client.Client, id string) (models.User, error) {
	return client.Get[models.User](ctx, c, "/users/"+url.PathEscape(id), nil)
}

// Me returns the user the access token belongs to.
func Me(ctx context.Context, c *client.Client) (models.User, error) {
	return client.Get[models.User](ctx, c, "/users/me", nil)
}
