package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/cldurl/lib/analytics"
)

func TestParseFeatures(t *testing.T) {
	t.Parallel()

	fs, err := analytics.ParseFeatures("lazyload", "Responsive", "lazyload")
	require.NoError(t, err)
	assert.True(t, fs.Has(analytics.FeatureResponsive))
	assert.True(t, fs.Has(analytics.FeatureLazyLoad))
	assert.False(t, fs.Has(analytics.FeaturePlaceholder))
	assert.Equal(t, 2, fs.Len())
	assert.Equal(t, []string{"responsive", "lazyload"}, fs.Names())
	assert.Equal(t, "responsive+lazyload", fs.String())

	empty, err := analytics.ParseFeatures()
	require.NoError(t, err)
	assert.Equal(t, analytics.FeatureSet(0), empty)
	assert.Equal(t, "none", empty.String())

	_, err = analytics.ParseFeatures("responsive", "placeholder-blur")
	assert.ErrorIs(t, err, analytics.ErrUnknownFeature)
}

func TestFeatureRegistryOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 4)
	for _, f := range analytics.Features() {
		names = append(names, f.String())
	}
	assert.Equal(t, []string{"responsive", "placeholder", "lazyload", "accessibility"}, names)
}

func TestProductRegistry(t *testing.T) {
	t.Parallel()

	for _, p := range analytics.Products() {
		assert.True(t, p.Valid())

		parsed, err := analytics.ParseProduct(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	code, err := analytics.ProductAngular.Code()
	require.NoError(t, err)
	assert.Equal(t, byte('K'), code)

	assert.False(t, analytics.Product(0).Valid())
	_, err = analytics.ParseProduct("flutter")
	assert.ErrorIs(t, err, analytics.ErrUnknownProduct)
	_, err = analytics.Product(99).TechVersion()
	assert.ErrorIs(t, err, analytics.ErrUnknownProduct)
}
