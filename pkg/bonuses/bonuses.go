// Package bonuses provides access to the Bonusly bonuses endpoints.
package bonuses

import (
	"context"
	"net/url"

	"github.com/madninja/bonusly-go/pkg/client"
	"github.com/madninja/bonusly-go/pkg/models"
	"github.com/madninja/bonusly-go/pkg/pagination"
)

// CreateRequest describes a bonus to give. Either Reason alone (the
// full "+10 @user for #great-work" form) or the separate fields may be
// used.
//
// See: [Create a Bonus](https://bonusly.docs.apiary.io/#reference/0/bonuses/create-a-bonus)
type CreateRequest struct {
	Reason        string `json:"reason,omitempty"`
	GiverEmail    string `json:"giver_email,omitempty"`
	ReceiverEmail string `json:"receiver_email,omitempty"`
	Amount        int    `json:"amount,omitempty"`
	Hashtag       string `json:"hashtag,omitempty"`
	ParentBonusID string `json:"parent_bonus_id,omitempty"`
}

// UpdateRequest changes the reason of an existing bonus.
type UpdateRequest struct {
	Reason string `json:"reason"`
}

// All returns every bonus as an automatically paged sequence.
//
// Do not pass `limit` or `skip` parameters; they are owned by the
// pager.
//
// See: [List Bonuses](https://bonusly.docs.apiary.io/#reference/0/bonuses/list-bonuses)
func All(c *client.Client, pageSize int, params url.Values) (*pagination.Pager[models.Bonus], error) {
	return pagination.Collection[models.Bonus](c, "/bonuses", params, pageSize)
}

// ForUser returns all bonuses for a given user as an automatically
// paged sequence.
//
// See: [User Bonuses](https://bonusly.docs.apiary.io/#reference/0/users/bonuses)
func ForUser(c *client.Client, userID string, pageSize int, params url.Values) (*pagination.Pager[models.Bonus], error) {
	path := "/users/" + url.PathEscape(userID) + "/bonuses"
	return pagination.Collection[models.Bonus](c, path, params, pageSize)
}

// Get returns a bonus by its id.
//
// See: [Retrieve a Bonus](https://bonusly.docs.apiary.io/#reference/0/bonuses/retrieve-a-bonus)
func Get(ctx context.Context, c *client.Client, id string) (models.Bonus, error) {
	return client.Get[models.Bonus](ctx, c, "/bonuses/"+url.PathEscape(id), nil)
}

// Create gives a new bonus.
func Create(ctx context.Context, c *client.Client, req CreateRequest) (models.Bonus, error) {
	return client.Post[models.Bonus](ctx, c, "/bonuses", req)
}

// Update changes an existing bonus.
func Update(ctx context.Context, c *client.Client, id string, req UpdateRequest) (models.Bonus, error) {
	return client.Put[models.Bonus](ctx, c, "/bonuses/"+url.PathEscape(id), req)
}

// Delete removes a bonus.
func Delete(ctx context.Context, c *client.Client, id string) (models.Bonus, error) {
	return client.Delete[models.Bonus](ctx, c, "/bonuses/"+url.PathEscape(id))
}
