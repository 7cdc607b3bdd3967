// Package delivery defines the contract for transport servers managed by the
// application lifecycle.
package delivery

import "context"

// Delivery is a transport endpoint (an HTTP server here) that can be served
// until its context or lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
