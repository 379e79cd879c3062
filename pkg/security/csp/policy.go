// Package csp builds Content-Security-Policy header values. The API itself
// serves only JSON, but the bundled Swagger UI is an HTML page and gets a
// policy of its own.
package csp

import "strings"

// directiveOrder fixes the serialization order so the header is stable
// across restarts and easy to compare in tests.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"object-src",
	"base-uri",
	"frame-ancestors",
	"form-action",
}

// Builder accumulates CSP directives. Not safe for concurrent mutation;
// build the policy once at startup and reuse the value.
type Builder struct {
	directives map[string][]string
	reportOnly bool
}

// NewBuilder creates an empty policy builder.
func NewBuilder() *Builder {
	return &Builder{directives: make(map[string][]string)}
}

// DefaultSrc sets the default-src directive, the fallback for every fetch
// directive not set explicitly.
func (b *Builder) DefaultSrc(sources ...string) *Builder {
	b.directives["default-src"] = sources
	return b
}

// ScriptSrc sets the script-src directive.
func (b *Builder) ScriptSrc(sources ...string) *Builder {
	b.directives["script-src"] = sources
	return b
}

// StyleSrc sets the style-src directive.
func (b *Builder) StyleSrc(sources ...string) *Builder {
	b.directives["style-src"] = sources
	return b
}

// ImgSrc sets the img-src directive.
func (b *Builder) ImgSrc(sources ...string) *Builder {
	b.directives["img-src"] = sources
	return b
}

// FontSrc sets the font-src directive.
func (b *Builder) FontSrc(sources ...string) *Builder {
	b.directives["font-src"] = sources
	return b
}

// ConnectSrc sets the connect-src directive (XHR, fetch, WebSocket targets).
func (b *Builder) ConnectSrc(sources ...string) *Builder {
	b.directives["connect-src"] = sources
	return b
}

// ObjectSrc sets the object-src directive.
func (b *Builder) ObjectSrc(sources ...string) *Builder {
	b.directives["object-src"] = sources
	return b
}

// BaseUri sets the base-uri directive.
func (b *Builder) BaseUri(sources ...string) *Builder {
	b.directives["base-uri"] = sources
	return b
}

// FrameAncestors sets the frame-ancestors directive, the CSP replacement
// for X-Frame-Options.
func (b *Builder) FrameAncestors(sources ...string) *Builder {
	b.directives["frame-ancestors"] = sources
	return b
}

// FormAction sets the form-action directive.
func (b *Builder) FormAction(sources ...string) *Builder {
	b.directives["form-action"] = sources
	return b
}

// ReportOnly switches the policy to report-only mode, which changes the
// header name returned by HeaderName.
func (b *Builder) ReportOnly(enabled bool) *Builder {
	b.reportOnly = enabled
	return b
}

// Build serializes the policy into a header value. Directives appear in a
// fixed order; an empty builder yields an empty string.
func (b *Builder) Build() string {
	parts := make([]string, 0, len(b.directives))
	for _, name := range directiveOrder {
		sources, ok := b.directives[name]
		if !ok || len(sources) == 0 {
			continue
		}
		parts = append(parts, name+" "+strings.Join(sources, " "))
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the response header this policy belongs in.
func (b *Builder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// StrictPolicy locks everything down; appropriate for JSON endpoints where
// the browser should render nothing.
func StrictPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'none'").
		FrameAncestors("'none'").
		BaseUri("'none'")
}

// SwaggerUIPolicy allows what the bundled Swagger UI actually needs:
// same-origin assets plus the inline styles and scripts the UI injects.
func SwaggerUIPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'", "'unsafe-inline'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		ConnectSrc("'self'").
		ObjectSrc("'none'").
		FrameAncestors("'none'")
}
