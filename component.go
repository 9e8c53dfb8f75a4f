package cldurl

import (
	"context"
	"fmt"
	"html"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// ImageTag returns a templ component rendering img as an <img> tag.
//
//	@cldurl.ImageTag(builder, cldurl.Image{PublicID: "sample", Loading: cldurl.LoadingLazy})
//
// URL errors surface as render errors; nothing is written in that case.
func ImageTag(b *Builder, img Image) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		src, err := b.URL(img)
		if err != nil {
			return err
		}

		attrs := []string{attr("src", src)}
		if img.Alt != "" {
			attrs = append(attrs, attr("alt", img.Alt))
		}
		attrs = append(attrs, sizeAttrs(img)...)
		if img.Loading != "" {
			attrs = append(attrs, attr("loading", img.Loading))
		}
		attrs = append(attrs, extraAttrs(img.Attrs)...)

		return writeTag(w, attrs)
	})
}

// PlaceholderTag returns a templ component rendering the placeholder of img.
// It is hidden from assistive technology; the real image carries the alt text.
func PlaceholderTag(b *Builder, img Image) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		src, err := b.PlaceholderURL(img)
		if err != nil {
			return err
		}

		attrs := []string{attr("src", src), attr("alt", ""), attr("aria-hidden", "true")}
		attrs = append(attrs, sizeAttrs(img)...)
		return writeTag(w, attrs)
	})
}

func writeTag(w io.Writer, attrs []string) error {
	_, err := io.WriteString(w, "<img "+strings.Join(attrs, " ")+">")
	return err
}

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

func sizeAttrs(img Image) []string {
	var out []string
	if img.Width > 0 {
		out = append(out, attr("width", strconv.Itoa(img.Width)))
	}
	if img.Height > 0 {
		out = append(out, attr("height", strconv.Itoa(img.Height)))
	}
	return out
}

// extraAttrs renders user attributes in key order. Boolean true renders the
// bare name, false omits it.
func extraAttrs(attrs templ.Attributes) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				out = append(out, html.EscapeString(k))
			}
		case string:
			out = append(out, attr(k, v))
		default:
			out = append(out, attr(k, fmt.Sprint(v)))
		}
	}
	return out
}
