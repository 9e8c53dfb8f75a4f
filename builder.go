package cldurl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pthm/cldurl/lib/analytics"
)

// Option configures New.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	sdkVersion  string
	techVersion string
}

// WithLogger sets the logger used for signature diagnostics.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSDKVersion overrides the SDK version reported in signatures,
// taking precedence over Config.SDKVersion and Version.
func WithSDKVersion(v string) Option {
	return func(o *options) {
		o.sdkVersion = v
	}
}

// WithTechVersion overrides the host framework version reported in signatures.
func WithTechVersion(v string) Option {
	return func(o *options) {
		o.techVersion = v
	}
}

// Builder builds delivery URLs. It is immutable and safe for concurrent use.
type Builder struct {
	cfg    Config
	base   string
	sig    analytics.Signature
	logger *slog.Logger
}

// New creates a Builder. Product and version settings are resolved here, so
// a misconfigured builder fails before any URL is produced.
//
//	b, err := cldurl.New(cldurl.Config{CloudName: "demo", URLAnalytics: true})
//	src, err := b.URL(cldurl.Image{PublicID: "sample", Loading: cldurl.LoadingLazy})
//	// http://res.cloudinary.com/demo/image/upload/sample?_a=AKHZdAHC
func New(cfg Config, opts ...Option) (*Builder, error) {
	o := &options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		sdkVersion:  cfg.SDKVersion,
		techVersion: cfg.TechVersion,
	}
	for _, opt := range opts {
		opt(o)
	}

	if cfg.CloudName == "" {
		return nil, fmt.Errorf("%w: cloud name is required", ErrInvalidConfig)
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Product == "" {
		cfg.Product = "angular"
	}

	product, err := analytics.ParseProduct(cfg.Product)
	if err != nil {
		return nil, err
	}

	if o.sdkVersion == "" {
		o.sdkVersion = Version
	}
	sdk, err := analytics.ParseVersion(o.sdkVersion)
	if err != nil {
		return nil, fmt.Errorf("sdk version: %w", err)
	}

	tech, err := product.TechVersion()
	if err != nil {
		return nil, err
	}
	if o.techVersion != "" {
		if tech, err = analytics.ParseVersion(o.techVersion); err != nil {
			return nil, fmt.Errorf("tech version: %w", err)
		}
	}

	sig := analytics.Signature{Product: product, SDKVersion: sdk, TechVersion: tech}
	if _, err := sig.Encode(); err != nil {
		return nil, err
	}

	scheme := "http"
	if cfg.Secure {
		scheme = "https"
	}

	return &Builder{
		cfg:    cfg,
		base:   scheme + "://" + cfg.Host + "/" + cfg.CloudName + "/image/upload",
		sig:    sig,
		logger: o.logger.With(slog.String("component", "cldurl"), slog.String("product", product.String())),
	}, nil
}

// Config returns the builder's resolved configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// URL returns the delivery URL for img, signed when analytics is enabled.
func (b *Builder) URL(img Image) (string, error) {
	if err := img.validate(); err != nil {
		return "", err
	}
	return b.AppendSignature(b.path(img.segments(), img.PublicID), img.Features())
}

// PlaceholderURL returns the URL of img's placeholder.
func (b *Builder) PlaceholderURL(img Image) (string, error) {
	if err := img.validate(); err != nil {
		return "", err
	}
	fs := analytics.NewFeatureSet(analytics.FeaturePlaceholder)
	return b.AppendSignature(b.path(img.placeholderSegments(), img.PublicID), fs)
}

// Signature returns the analytics token for the given features.
func (b *Builder) Signature(features FeatureSet) (string, error) {
	sig := b.sig
	sig.Features = features
	token, err := sig.Encode()
	if err != nil {
		b.logger.LogAttrs(context.Background(), slog.LevelError, "encode signature",
			slog.String("features", features.String()),
			slog.Any("error", err),
		)
		return "", err
	}
	return token, nil
}

// AppendSignature adds the _a parameter to rawURL. It uses "?" when rawURL
// has no query and "&" otherwise. When analytics is disabled rawURL is
// returned unchanged.
func (b *Builder) AppendSignature(rawURL string, features FeatureSet) (string, error) {
	if !b.cfg.URLAnalytics {
		return rawURL, nil
	}

	token, err := b.Signature(features)
	if err != nil {
		return "", err
	}

	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}

	b.logger.Debug("signature appended", slog.String("token", token), slog.String("features", features.String()))
	return rawURL + sep + "_a=" + token, nil
}

func (b *Builder) path(segments []string, publicID string) string {
	var sb strings.Builder
	sb.WriteString(b.base)
	for _, s := range segments {
		if s == "" {
			continue
		}
		sb.WriteByte('/')
		sb.WriteString(s)
	}
	sb.WriteByte('/')
	sb.WriteString(publicID)
	return sb.String()
}
