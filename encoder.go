package cldurl

import "github.com/pthm/cldurl/lib/analytics"

// Signature is an alias for analytics.Signature for convenience.
type Signature = analytics.Signature

// FeatureSet is an alias for analytics.FeatureSet.
type FeatureSet = analytics.FeatureSet

// Feature is an alias for analytics.Feature.
type Feature = analytics.Feature

// Features reported in signatures.
const (
	FeatureResponsive    = analytics.FeatureResponsive
	FeaturePlaceholder   = analytics.FeaturePlaceholder
	FeatureLazyLoad      = analytics.FeatureLazyLoad
	FeatureAccessibility = analytics.FeatureAccessibility
)

// DecodeSignature parses the value of an _a query parameter.
func DecodeSignature(token string) (Signature, error) {
	return analytics.Decode(token)
}
