// Package cldecho provides Echo framework integration for collecting
// analytics signatures from delivery requests.
//
// Attach the middleware to the routes that serve media:
//
//	e := echo.New()
//	tally := collector.NewTally()
//	e.Use(cldecho.Middleware(tally, cldecho.WithLogger(logger)))
//
// Handlers can read the decoded signature:
//
//	sig, ok := cldecho.SignatureFrom(c)
package cldecho

import (
	"io"
	"log/slog"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/cldurl"
	"github.com/pthm/cldurl/lib/collector"
)

const signatureKey = "cldurl.signature"

// Option configures Middleware.
type Option func(*options)

type options struct {
	param  string
	logger *slog.Logger
	now    func() time.Time
}

// WithParam sets the query parameter carrying the token. Defaults to "_a".
func WithParam(name string) Option {
	return func(o *options) {
		if name != "" {
			o.param = name
		}
	}
}

// WithLogger sets the logger for rejected tokens and recorder failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source for records.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Middleware decodes the token of every request that carries one and hands
// the record to rec. Missing or invalid tokens never fail the request.
func Middleware(rec collector.Recorder, opts ...Option) echo.MiddlewareFunc {
	o := &options{
		param:  "_a",
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger.With(slog.String("component", "cldecho"))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.QueryParam(o.param)
			if token == "" {
				return next(c)
			}

			sig, err := cldurl.DecodeSignature(token)
			if err != nil {
				logger.Warn("invalid analytics token",
					slog.String("token", token),
					slog.String("path", c.Request().URL.Path),
					slog.Any("error", err),
				)
				return next(c)
			}
			c.Set(signatureKey, sig)

			record := collector.FromSignature(sig, token, c.Request().URL.Path, o.now())
			if err := rec.Record(c.Request().Context(), record); err != nil {
				logger.Error("record analytics token", slog.String("token", token), slog.Any("error", err))
			}
			return next(c)
		}
	}
}

// SignatureFrom returns the signature decoded by Middleware.
func SignatureFrom(c echo.Context) (cldurl.Signature, bool) {
	sig, ok := c.Get(signatureKey).(cldurl.Signature)
	return sig, ok
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return cldecho.Render(c, cldurl.ImageTag(builder, img))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
