package cldurl

import (
	"errors"

	"github.com/pthm/cldurl/lib/analytics"
)

// Sentinel errors for URL building.
var (
	ErrInvalidConfig        = errors.New("cldurl: invalid configuration")
	ErrMissingPublicID      = errors.New("cldurl: missing public ID")
	ErrUnknownAccessibility = errors.New("cldurl: unknown accessibility mode")
	ErrUnknownPlaceholder   = errors.New("cldurl: unknown placeholder type")
	ErrInvalidLoading       = errors.New("cldurl: invalid loading mode")
)

// Signature errors, re-exported from lib/analytics.
var (
	ErrUnknownProduct = analytics.ErrUnknownProduct
	ErrUnknownFeature = analytics.ErrUnknownFeature
	ErrInvalidVersion = analytics.ErrInvalidVersion
	ErrInvalidToken   = analytics.ErrInvalidToken
)

// IsSignatureError reports whether err came from encoding or decoding an
// analytics signature.
func IsSignatureError(err error) bool {
	return errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrUnknownFeature) ||
		errors.Is(err, ErrInvalidVersion) ||
		errors.Is(err, ErrInvalidToken)
}

// IsImageError reports whether err describes invalid Image options.
func IsImageError(err error) bool {
	return errors.Is(err, ErrMissingPublicID) ||
		errors.Is(err, ErrUnknownAccessibility) ||
		errors.Is(err, ErrUnknownPlaceholder) ||
		errors.Is(err, ErrInvalidLoading)
}
