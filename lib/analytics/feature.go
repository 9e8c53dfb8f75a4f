package analytics

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Feature is an optional capability that was active when a URL was produced.
// Its value is the bit position in a FeatureSet.
type Feature uint8

const (
	FeatureResponsive Feature = iota
	FeaturePlaceholder
	FeatureLazyLoad
	FeatureAccessibility

	featureCount = iota
)

var featureNames = [featureCount]string{
	FeatureResponsive:    "responsive",
	FeaturePlaceholder:   "placeholder",
	FeatureLazyLoad:      "lazyload",
	FeatureAccessibility: "accessibility",
}

// noFeatures is the suffix character for an empty FeatureSet.
const noFeatures = '0'

// allFeatures has a bit set for every registered feature.
const allFeatures FeatureSet = 1<<featureCount - 1

// FeatureSet is a bitmask of active features.
type FeatureSet uint8

// suffixes maps each FeatureSet to its token character, and suffixSets is the
// reverse. Sets are ranked by how many features they carry and then by mask
// value, so single features take the first alphabet characters in declaration
// order.
var (
	suffixes   [allFeatures + 1]byte
	suffixSets = map[byte]FeatureSet{noFeatures: 0}
)

func init() {
	sets := make([]FeatureSet, 0, allFeatures)
	for s := FeatureSet(1); s <= allFeatures; s++ {
		sets = append(sets, s)
	}
	slices.SortStableFunc(sets, func(a, b FeatureSet) int {
		if d := a.Len() - b.Len(); d != 0 {
			return d
		}
		return int(a) - int(b)
	})

	suffixes[0] = noFeatures
	for rank, s := range sets {
		suffixes[s] = alphabet[rank]
		suffixSets[alphabet[rank]] = s
	}
}

// ParseFeature resolves a feature by name (case-insensitive).
func ParseFeature(name string) (Feature, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range featureNames {
		if n == name {
			return Feature(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// ParseFeatures builds a FeatureSet from names. Duplicates are allowed.
func ParseFeatures(names ...string) (FeatureSet, error) {
	var s FeatureSet
	for _, name := range names {
		f, err := ParseFeature(name)
		if err != nil {
			return 0, err
		}
		s = s.With(f)
	}
	return s, nil
}

// Features returns every registered feature in bit order.
func Features() []Feature {
	out := make([]Feature, featureCount)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

func (f Feature) String() string {
	if int(f) < featureCount {
		return featureNames[f]
	}
	return fmt.Sprintf("feature(%d)", uint8(f))
}

// NewFeatureSet returns a set with the given features active.
// Features outside the registry make the set invalid; see FeatureSet.Validate.
func NewFeatureSet(features ...Feature) FeatureSet {
	var s FeatureSet
	for _, f := range features {
		s = s.With(f)
	}
	return s
}

// With returns a copy of s with f active.
func (s FeatureSet) With(f Feature) FeatureSet {
	if f >= 8 {
		return s | ^allFeatures
	}
	return s | 1<<f
}

// Has reports whether f is active in s.
func (s FeatureSet) Has(f Feature) bool {
	return f < 8 && s&(1<<f) != 0
}

// Len returns the number of active features.
func (s FeatureSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Validate reports an error if s carries bits outside the registry.
func (s FeatureSet) Validate() error {
	if s&^allFeatures != 0 {
		return fmt.Errorf("%w: bits %#x", ErrUnknownFeature, uint8(s&^allFeatures))
	}
	return nil
}

// Names returns the active feature names in bit order.
func (s FeatureSet) Names() []string {
	names := make([]string, 0, s.Len())
	for f := Feature(0); f < featureCount; f++ {
		if s.Has(f) {
			names = append(names, featureNames[f])
		}
	}
	return names
}

func (s FeatureSet) String() string {
	if s == 0 {
		return "none"
	}
	return strings.Join(s.Names(), "+")
}

// suffix returns the token character for s. s must be valid.
func (s FeatureSet) suffix() byte {
	return suffixes[s]
}
