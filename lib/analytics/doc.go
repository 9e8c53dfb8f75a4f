// Package analytics encodes SDK analytics signatures: short, URL-safe tokens
// appended to delivery URLs as the _a query parameter.
//
// A token identifies the SDK family, its version, the version of the host
// framework, and which optional features were active when the URL was built.
// Every token has the same length:
//
//	A K HZd AH 0
//	| | |   |  '- active features ('0' when none)
//	| | |   '---- host framework version (major.minor)
//	| | '-------- SDK version
//	| '---------- product code
//	'------------ algorithm version
//
// Encoding is pure and safe for concurrent use. All lookup tables are built
// at package initialization and never modified afterwards.
//
// Version components are reduced to two decimal digits and packed in reverse
// order, so 100.0.0 encodes like 0.0.0. The packed SDK version
// (patch*10000 + minor*100 + major) must fit in 18 bits: every patch up to 25
// fits, 43.21.26 is the last value with patch 26, and 1.3.27 fails with
// ErrInvalidVersion rather than colliding with another version. The host
// framework version (minor*100 + major) must fit in 12 bits.
package analytics
