package requestid

import "github.com/google/uuid"

// Generator produces a new request ID when the client did not send one.
// Implementations must be safe for concurrent use.
type Generator func() (uuid.UUID, error)

// DefaultGenerator returns time-ordered UUIDv7 values.
var DefaultGenerator Generator = uuid.NewV7
