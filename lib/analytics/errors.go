package analytics

import "errors"

// Sentinel errors for signature encoding and decoding.
//
// ErrUnknownProduct and ErrUnknownFeature indicate a wiring mistake between the
// caller and the registries in this package. They are returned before any
// output is produced.
var (
	ErrUnknownProduct = errors.New("analytics: unknown product")
	ErrUnknownFeature = errors.New("analytics: unknown feature")
	ErrInvalidVersion = errors.New("analytics: invalid version")
	ErrInvalidToken   = errors.New("analytics: invalid token")
)
