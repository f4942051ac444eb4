// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as pinging the
// database or draining in-flight HTTP requests.
const DefaultTimeout = 10 * time.Second
