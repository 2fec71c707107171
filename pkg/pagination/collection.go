package pagination

import (
	"context"
	"net/url"
	"strconv"

	"github.com/madninja/bonusly-go/pkg/client"
)

// Collection builds a pager over a paginated collection endpoint.
// Params are static query parameters sent with every page fetch; they
// must not include skip or limit, which the pager owns and overwrites.
func Collection[T any](c *client.Client, path string, params url.Values, pageSize int) (*Pager[T], error) {
	static := url.Values{}
	for key, values := range params {
		if key == "skip" || key == "limit" {
			continue
		}
		static[key] = append([]string(nil), values...)
	}

	return New(pageSize, func(ctx context.Context, skip, limit int) ([]T, error) {
		query := url.Values{}
		for key, values := range static {
			query[key] = values
		}
		query.Set("skip", strconv.Itoa(skip))
		query.Set("limit", strconv.Itoa(limit))
		return client.Get[[]T](ctx, c, path, query)
	})
}
