// Command example serves a small gallery of signed images and a fake
// delivery endpoint that collects their analytics tokens.
//
//	go run ./example
//	open http://localhost:8080/ and then http://localhost:8080/stats
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pthm/cldurl"
	cldecho "github.com/pthm/cldurl/adapters/echo"
	"github.com/pthm/cldurl/lib/collector"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Delivery points back at this server so the collector sees the tokens.
	b, err := cldurl.New(cldurl.Config{
		CloudName:    "demo",
		Host:         "localhost:8080/cdn",
		URLAnalytics: true,
	}, cldurl.WithLogger(logger))
	if err != nil {
		logger.Error("create builder", slog.Any("error", err))
		os.Exit(1)
	}

	tally := collector.NewTally()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return cldecho.Render(c, gallery(b))
	})

	cdn := e.Group("/cdn", cldecho.Middleware(tally, cldecho.WithLogger(logger)))
	cdn.GET("/*", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e.GET("/stats", func(c echo.Context) error {
		return c.JSON(http.StatusOK, tally.Snapshot())
	})

	logger.Info("listening", slog.String("addr", ":8080"))
	if err := serve(e, ":8080"); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

// serve runs e until it fails or is shut down. A graceful shutdown is not an
// error.
func serve(e *echo.Echo, addr string) error {
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func gallery(b *cldurl.Builder) templ.Component {
	return templ.Join(
		cldurl.ImageTag(b, cldurl.Image{PublicID: "sample", Alt: "Plain"}),
		cldurl.ImageTag(b, cldurl.Image{PublicID: "sample", Alt: "Responsive", Responsive: true}),
		cldurl.PlaceholderTag(b, cldurl.Image{PublicID: "sample"}),
		cldurl.ImageTag(b, cldurl.Image{PublicID: "sample", Alt: "Lazy", Loading: cldurl.LoadingLazy}),
		cldurl.ImageTag(b, cldurl.Image{PublicID: "sample", Alt: "Dark", Accessibility: cldurl.AccessibilityDarkMode}),
	)
}
