package main

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeShutdownIsNotAnError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	done := make(chan error, 1)
	go func() { done <- serve(e, "127.0.0.1:0") }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after shutdown")
	}
}

func TestServeReportsListenFailure(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	assert.Error(t, serve(e, "127.0.0.1:-1"))
}
