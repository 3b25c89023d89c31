// Package delivery defines the inbound transport contract for the application.
package delivery

import "context"

// Delivery is a serving surface, such as the HTTP server. Serve blocks until
// the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
