package cldurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/cldurl"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_SECURE", "true")
	t.Setenv("CLOUDINARY_URL_ANALYTICS", "true")
	t.Setenv("CLOUDINARY_SDK_VERSION", "1.3.3")

	cfg, err := cldurl.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cldurl.Config{
		CloudName:    "demo",
		Secure:       true,
		URLAnalytics: true,
		Product:      "angular",
		SDKVersion:   "1.3.3",
	}, cfg)

	b, err := cldurl.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, cldurl.DefaultHost, b.Config().Host)
	src, err := b.URL(cldurl.Image{PublicID: "sample"})
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/sample?_a=AKHZdAH0", src)
}

func TestLoadConfigRequiresCloudName(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")

	_, err := cldurl.LoadConfig()
	require.ErrorIs(t, err, cldurl.ErrInvalidConfig)
	assert.Panics(t, func() { cldurl.MustLoadConfig() })
}

func TestLoadConfigInvalidBool(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_URL_ANALYTICS", "sometimes")

	_, err := cldurl.LoadConfig()
	assert.ErrorIs(t, err, cldurl.ErrInvalidConfig)
}
