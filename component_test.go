package cldurl_test

import (
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/cldurl"
)

func TestImageTag(t *testing.T) {
	t.Parallel()

	b := newBuilder(t, true)
	result, err := cldurl.TestRender(cldurl.ImageTag(b, cldurl.Image{
		PublicID: "sample",
		Alt:      `A "quoted" sample`,
		Width:    300,
		Height:   200,
		Loading:  cldurl.LoadingLazy,
		Attrs:    templ.Attributes{"class": "hero", "decoding": "async", "hidden": false, "draggable": true},
	}))
	require.NoError(t, err)

	assert.Equal(t,
		`<img src="http://res.cloudinary.com/@@fake_angular_sdk@@/image/upload/sample?_a=AKHZdAHC"`+
			` alt="A &#34;quoted&#34; sample" width="300" height="200" loading="lazy"`+
			` class="hero" decoding="async" draggable>`,
		result.HTML)

	sigs, err := result.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs, 1)
	assert.True(t, sigs[0].Features.Has(cldurl.FeatureLazyLoad))
}

func TestPlaceholderTag(t *testing.T) {
	t.Parallel()

	b := newBuilder(t, true)
	img := cldurl.Image{PublicID: "sample", Width: 64}

	result, err := cldurl.TestRender(templ.Join(cldurl.PlaceholderTag(b, img), cldurl.ImageTag(b, img)))
	require.NoError(t, err)

	assert.True(t, result.HTMLContainsAll(`aria-hidden="true"`, `width="64"`))
	assert.Equal(t, []string{
		"http://res.cloudinary.com/@@fake_angular_sdk@@/image/upload/e_blur:2000,f_auto,q_1/sample?_a=AKHZdAHB",
		"http://res.cloudinary.com/@@fake_angular_sdk@@/image/upload/sample?_a=AKHZdAH0",
	}, result.Sources())
}

func TestImageTagEscapesQuerySeparator(t *testing.T) {
	t.Parallel()

	b := newBuilder(t, true)
	result, err := cldurl.TestRender(cldurl.ImageTag(b, cldurl.Image{PublicID: "sample?v=1"}))
	require.NoError(t, err)

	assert.True(t, result.HTMLContains(`sample?v=1&amp;_a=AKHZdAH0`))
	assert.Equal(t, []string{"http://res.cloudinary.com/@@fake_angular_sdk@@/image/upload/sample?v=1&_a=AKHZdAH0"}, result.Sources())
}

func TestImageTagRenderError(t *testing.T) {
	t.Parallel()

	b := newBuilder(t, true)
	result, err := cldurl.TestRender(cldurl.ImageTag(b, cldurl.Image{}))
	require.ErrorIs(t, err, cldurl.ErrMissingPublicID)
	assert.Nil(t, result)
}

func TestRenderHandler(t *testing.T) {
	t.Parallel()

	b := newBuilder(t, false)
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = cldurl.Render(w, r, cldurl.ImageTag(b, cldurl.Image{PublicID: r.URL.Query().Get("id")}))
	})

	result := cldurl.TestServe(h, "/?id=sample")
	assert.True(t, result.HasStatus(http.StatusOK))
	assert.Equal(t, "text/html; charset=utf-8", result.GetHeader("Content-Type"))
	assert.Equal(t, []string{"http://res.cloudinary.com/@@fake_angular_sdk@@/image/upload/sample"}, result.Sources())

	sigs, err := result.Signatures()
	require.NoError(t, err)
	assert.Empty(t, sigs)
}
