// Package cldurl builds media delivery URLs and signs them with a compact SDK
// analytics token.
//
// A Builder turns Image options into a delivery URL of the form
//
//	http://res.cloudinary.com/<cloud>/image/upload/<transformations>/<public-id>
//
// and, when Config.URLAnalytics is set, appends an _a query parameter that
// tells the delivery backend which SDK produced the URL and which optional
// features were in play:
//
//	b, _ := cldurl.New(cldurl.Config{CloudName: "demo", URLAnalytics: true})
//	src, _ := b.URL(cldurl.Image{PublicID: "sample", Accessibility: cldurl.AccessibilityDarkMode})
//	// http://res.cloudinary.com/demo/image/upload/e_tint:75:black/sample?_a=AKHZdAHD
//
// # Signatures
//
// Tokens are produced by lib/analytics. They are eight characters long, carry
// no separators and need no escaping. The first seven characters depend only
// on the product and versions, so they are constant for a build; the last one
// encodes the active features:
//
//	'0'  no features
//	'A'  responsive
//	'B'  placeholder
//	'C'  lazy loading
//	'D'  accessibility
//
// Combinations of features map to further characters; see lib/analytics.
//
// # Versions
//
// The SDK version defaults to Version, which release builds set through
// -ldflags. Config.SDKVersion or WithSDKVersion override it per Builder,
// which is how tests pin the version without touching globals.
//
// # Components
//
// ImageTag and PlaceholderTag render <img> tags as templ components. The
// placeholder URL always reports the placeholder feature alone, while the
// main image reports responsive, lazy loading and accessibility.
//
// # Collecting
//
// lib/collector and adapters/echo decode tokens on the receiving side and
// record them as msgpack streams or in-memory tallies.
package cldurl
