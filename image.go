package cldurl

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/pthm/cldurl/lib/analytics"
)

// AccessibilityMode selects an effect that adapts an image for viewers.
type AccessibilityMode string

const (
	AccessibilityDarkMode   AccessibilityMode = "darkmode"
	AccessibilityBrightMode AccessibilityMode = "brightmode"
	AccessibilityMonochrome AccessibilityMode = "monochrome"
	AccessibilityColorblind AccessibilityMode = "colorblind"
)

var accessibilityEffects = map[AccessibilityMode]string{
	AccessibilityDarkMode:   "e_tint:75:black",
	AccessibilityBrightMode: "e_tint:50:white",
	AccessibilityMonochrome: "e_grayscale",
	AccessibilityColorblind: "e_assist_colorblind",
}

// PlaceholderType selects the low-quality image shown while the real one loads.
type PlaceholderType string

const (
	PlaceholderBlur             PlaceholderType = "blur"
	PlaceholderPixelate         PlaceholderType = "pixelate"
	PlaceholderVectorize        PlaceholderType = "vectorize"
	PlaceholderPredominantColor PlaceholderType = "predominant-color"
)

var placeholderEffects = map[PlaceholderType]string{
	PlaceholderBlur:             "e_blur:2000,f_auto,q_1",
	PlaceholderPixelate:         "e_pixelate,f_auto,q_1",
	PlaceholderVectorize:        "e_vectorize:3:0.1,f_svg",
	PlaceholderPredominantColor: "w_iw_div_2,ar_1,c_pad,b_auto,f_auto,q_1",
}

// Loading values for the img loading attribute.
const (
	LoadingLazy  = "lazy"
	LoadingEager = "eager"
)

// Image describes one rendered image.
//
// Responsive, Loading and Accessibility are reported as features in the
// image's signature. Placeholder only affects PlaceholderURL, whose signature
// reports the placeholder feature alone.
type Image struct {
	PublicID string

	// Transformations are already-formatted path segments placed before any
	// effect added by the options below, for example "w_300,c_fill".
	Transformations []string

	Responsive    bool
	Loading       string
	Accessibility AccessibilityMode
	Placeholder   PlaceholderType

	Alt    string
	Width  int
	Height int

	// Attrs are extra attributes rendered on the img tag.
	Attrs templ.Attributes
}

// Features returns the signature features for the main image URL.
func (img Image) Features() FeatureSet {
	var fs analytics.FeatureSet
	if img.Responsive {
		fs = fs.With(analytics.FeatureResponsive)
	}
	if img.Loading == LoadingLazy {
		fs = fs.With(analytics.FeatureLazyLoad)
	}
	if img.Accessibility != "" {
		fs = fs.With(analytics.FeatureAccessibility)
	}
	return fs
}

func (img Image) validate() error {
	if img.PublicID == "" {
		return ErrMissingPublicID
	}
	switch img.Loading {
	case "", LoadingLazy, LoadingEager:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLoading, img.Loading)
	}
	if img.Accessibility != "" {
		if _, ok := accessibilityEffects[img.Accessibility]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAccessibility, img.Accessibility)
		}
	}
	if img.Placeholder != "" {
		if _, ok := placeholderEffects[img.Placeholder]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPlaceholder, img.Placeholder)
		}
	}
	return nil
}

// segments returns the transformation path segments of the main image.
func (img Image) segments() []string {
	segs := append([]string(nil), img.Transformations...)
	if effect, ok := accessibilityEffects[img.Accessibility]; ok {
		segs = append(segs, effect)
	}
	return segs
}

// placeholderSegments returns the transformation path segments of the
// placeholder. An unset placeholder type means blur.
func (img Image) placeholderSegments() []string {
	kind := img.Placeholder
	if kind == "" {
		kind = PlaceholderBlur
	}
	segs := append([]string(nil), img.Transformations...)
	return append(segs, placeholderEffects[kind])
}
