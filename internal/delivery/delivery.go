// Package delivery defines the contract every transport entry point of the
// application satisfies, so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running entry point such as the HTTP server or the
// background scheduler. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
