package pagination

import (
	"context"
	"fmt"

	"github.com/madninja/bonusly-go/pkg/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for pagination.
var (
	pageFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bonusly_page_fetches_total",
		Help: "Total page fetches issued by pagers",
	})

	pageItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bonusly_page_items_total",
		Help: "Total items received across all page fetches",
	})
)

// FetchFunc fetches one page of a collection: the items at positions
// [skip, skip+limit) in upstream order. A short or empty page is not
// an error; any page shorter than limit marks the end of the
// collection.
type FetchFunc[T any] func(ctx context.Context, skip, limit int) ([]T, error)

// Pager produces the items of a paginated collection one at a time,
// fetching pages on demand. Not safe for concurrent use; each pager
// belongs to exactly one consumer.
type Pager[T any] struct {
	fetch FetchFunc[T]
	limit int

	// buf holds the current page reversed, so items pop from the end
	// in upstream order.
	buf       []T
	skip      int
	exhausted bool
	err       error
}

// New creates a pager over fetch with the given page size.
func New[T any](pageSize int, fetch FetchFunc[T]) (*Pager[T], error) {
	if pageSize < 1 {
		return nil, client.NewConfigurationError(fmt.Sprintf("page size must be >= 1 (got %d)", pageSize))
	}
	if fetch == nil {
		return nil, client.NewConfigurationError("fetch function is required")
	}
	return &Pager[T]{fetch: fetch, limit: pageSize}, nil
}

// Next returns the next item of the sequence. The boolean reports
// whether an item was produced; false with a nil error means the
// collection is exhausted. Any fetch error is terminal: it is returned
// now and on every later call, and no further fetches are attempted.
func (p *Pager[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if p.err != nil {
		return zero, false, p.err
	}
	if item, ok := p.pop(); ok {
		return item, true, nil
	}
	if p.exhausted {
		return zero, false, nil
	}

	page, err := p.fetch(ctx, p.skip, p.limit)
	pageFetchesTotal.Inc()
	if err != nil {
		p.err = err
		log.Debug().
			Err(err).
			Int("skip", p.skip).
			Msg("Page fetch failed, sequence terminated")
		return zero, false, err
	}
	if len(page) == 0 {
		p.exhausted = true
		return zero, false, nil
	}

	pageItemsTotal.Add(float64(len(page)))
	log.Debug().
		Int("skip", p.skip).
		Int("received", len(page)).
		Msg("Fetched page")

	// Advance by what was actually received. A short page already
	// proves the collection end: draining it must not cost another
	// fetch.
	p.skip += len(page)
	if len(page) < p.limit {
		p.exhausted = true
	}

	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}
	p.buf = page

	item, _ := p.pop()
	return item, true, nil
}

// Err returns the terminal error of the sequence, if any.
func (p *Pager[T]) Err() error {
	return p.err
}

// pop removes and returns the next buffered item.
func (p *Pager[T]) pop() (T, bool) {
	var zero T
	n := len(p.buf)
	if n == 0 {
		return zero, false
	}
	item := p.buf[n-1]
	p.buf[n-1] = zero
	p.buf = p.buf[:n-1]
	return item, true
}

// Take collects up to n items. It returns early without error when the
// collection ends first, and returns the items produced so far together
// with the error when a fetch fails.
func (p *Pager[T]) Take(ctx context.Context, n int) ([]T, error) {
	items := make([]T, 0, n)
	for len(items) < n {
		item, ok, err := p.Next(ctx)
		if err != nil {
			return items, err
		}
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items, nil
}

// All drains the sequence into a slice.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	for {
		item, ok, err := p.Next(ctx)
		if err != nil {
			return items, err
		}
		if !ok {
			return items, nil
		}
		items = append(items, item)
	}
}
