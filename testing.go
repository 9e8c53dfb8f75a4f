package cldurl

import (
	"bytes"
	"context"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds rendered output for assertions in tests.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
}

// TestRender renders a component and returns testable output.
//
//	result, err := cldurl.TestRender(cldurl.ImageTag(b, img))
//	sigs, err := result.Signatures()
func TestRender(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders a component with a custom context.
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestServe sends a GET request for target to h and captures the response.
func TestServe(h http.Handler, target string) *TestResult {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

var srcAttr = regexp.MustCompile(`\ssrc="([^"]*)"`)

// Sources returns the unescaped src attribute of every tag, in order.
func (r *TestResult) Sources() []string {
	matches := srcAttr.FindAllStringSubmatch(r.HTML, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, html.UnescapeString(m[1]))
	}
	return out
}

// Signatures decodes the _a parameter of every source that carries one.
func (r *TestResult) Signatures() ([]Signature, error) {
	var out []Signature
	for _, src := range r.Sources() {
		u, err := url.Parse(src)
		if err != nil {
			return nil, err
		}
		token := u.Query().Get("_a")
		if token == "" {
			continue
		}
		sig, err := DecodeSignature(token)
		if err != nil {
			return nil, err
		}
		out = append(out, sig)
	}
	return out, nil
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}
