// Package correlation generates operation identifiers. Splitter.MakeShares
// stamps one on every ShareSet it returns (ShareSet.OperationID); the core's
// log lines and metrics do not carry it. The core has no request/response transport of
// its own, so the context-propagation half of a typical correlation-ID
// package (HTTP/gRPC header plumbing) has nothing to attach to here; only
// ID generation survives.
package correlation

import "github.com/google/uuid"

// NewID generates a new UUID v4 operation identifier as a string, suitable
// for a log field.
func NewID() string {
	return uuid.New().String()
}

// NewUUID generates a new UUID v4 operation identifier.
func NewUUID() uuid.UUID {
	return uuid.New()
}
