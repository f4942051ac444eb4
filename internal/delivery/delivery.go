// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a transport server (HTTP API, push worker) started by the
// composition root. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
