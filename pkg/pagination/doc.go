// Package pagination turns a skip/limit paginated Bonusly collection
// endpoint into a single lazy sequence of items.
//
// Bonusly pages collections with `skip` and `limit` query parameters
// and signals the end of a collection with an empty page. The pager
// hides that protocol behind a pull-based interface: it buffers one
// page at a time and re-fetches the next page only once the consumer
// has drained the previous one.
//
// Example usage:
//
//	pager, err := pagination.Collection[models.User](c, "/users", nil, 20)
//	if err != nil {
//		return err
//	}
//	for {
//		user, ok, err := pager.Next(ctx)
//		if err != nil || !ok {
//			break
//		}
//		// use user
//	}
//
// The pager:
//   - Issues at most one upstream request at a time (no read-ahead)
//   - Advances skip by the number of items actually received
//   - Ends permanently when a fetch returns a short or empty page
//   - Treats any fetch error as terminal for the sequence
//   - Costs nothing when the consumer stops pulling early
//
// A pager instance owns private mutable state and must be driven by a
// single consumer. Independent pagers are fully independent and may
// run in parallel.
package pagination
