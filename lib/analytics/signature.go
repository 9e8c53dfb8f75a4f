package analytics

import "fmt"

// algorithmVersion is the first character of every token.
const algorithmVersion = 'A'

// Token layout, by character position.
const (
	sdkVersionLen  = 3
	techVersionLen = 2

	productPos     = 1
	sdkVersionPos  = productPos + 1
	techVersionPos = sdkVersionPos + sdkVersionLen
	featurePos     = techVersionPos + techVersionLen

	// TokenLen is the length of every token.
	TokenLen = featurePos + 1

	// PrefixLen is the length of the product and version region, which is
	// constant for a given SDK build.
	PrefixLen = featurePos
)

// Signature is the decoded content of a token.
type Signature struct {
	Product     Product
	SDKVersion  Version
	TechVersion Version // only major and minor are encoded
	Features    FeatureSet
}

// Encode returns the token for product p at SDK version v with the given
// features, using the product's default technology version.
//
//	token, err := analytics.Encode(analytics.ProductAngular,
//	    analytics.MustParseVersion("1.3.3"),
//	    analytics.NewFeatureSet(analytics.FeatureResponsive))
//	// token == "AKHZdAHA"
func Encode(p Product, v Version, features FeatureSet) (string, error) {
	tech, err := p.TechVersion()
	if err != nil {
		return "", err
	}
	return Signature{Product: p, SDKVersion: v, TechVersion: tech, Features: features}.Encode()
}

// EncodeNames is Encode for callers holding names rather than enum values.
// Any unregistered name fails the whole call.
func EncodeNames(product, version string, features ...string) (string, error) {
	p, err := ParseProduct(product)
	if err != nil {
		return "", err
	}
	v, err := ParseVersion(version)
	if err != nil {
		return "", err
	}
	fs, err := ParseFeatures(features...)
	if err != nil {
		return "", err
	}
	return Encode(p, v, fs)
}

// Encode returns the token for s. The result is always TokenLen characters.
// A version whose packed form overflows its field fails with
// ErrInvalidVersion.
func (s Signature) Encode() (string, error) {
	code, err := s.Product.Code()
	if err != nil {
		return "", err
	}
	if err := s.Features.Validate(); err != nil {
		return "", err
	}
	if err := s.SDKVersion.validate(); err != nil {
		return "", err
	}
	if err := s.TechVersion.validate(); err != nil {
		return "", err
	}
	sdk, err := encodeVersion(s.SDKVersion, sdkVersionLen)
	if err != nil {
		return "", fmt.Errorf("sdk version: %w", err)
	}
	tech, err := encodeVersion(s.TechVersion, techVersionLen)
	if err != nil {
		return "", fmt.Errorf("tech version: %w", err)
	}

	buf := make([]byte, 0, TokenLen)
	buf = append(buf, algorithmVersion, code)
	buf = append(buf, sdk...)
	buf = append(buf, tech...)
	buf = append(buf, s.Features.suffix())
	return string(buf), nil
}

// Decode parses a token produced by Encode. Version components above 99
// decode to their last two digits.
func Decode(token string) (Signature, error) {
	if len(token) != TokenLen || token[0] != algorithmVersion {
		return Signature{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	p, ok := productsByCode[token[productPos]]
	if !ok {
		return Signature{}, fmt.Errorf("%w: code %q", ErrUnknownProduct, token[productPos])
	}
	sdk, ok := decodeVersion(token[sdkVersionPos:techVersionPos])
	if !ok {
		return Signature{}, fmt.Errorf("%w: sdk version in %q", ErrInvalidToken, token)
	}
	tech, ok := decodeVersion(token[techVersionPos:featurePos])
	if !ok {
		return Signature{}, fmt.Errorf("%w: tech version in %q", ErrInvalidToken, token)
	}
	fs, ok := suffixSets[token[featurePos]]
	if !ok {
		return Signature{}, fmt.Errorf("%w: feature suffix %q", ErrUnknownFeature, token[featurePos])
	}
	return Signature{Product: p, SDKVersion: sdk, TechVersion: tech, Features: fs}, nil
}

// Prefix returns the product and version region of a token.
func Prefix(token string) string {
	if len(token) < PrefixLen {
		return token
	}
	return token[:PrefixLen]
}
