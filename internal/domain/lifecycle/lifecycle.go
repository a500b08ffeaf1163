// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of every
// lifecycle-managed resource.
const DefaultTimeout = 30 * time.Second
