// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"net/url"

	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// URLBuilder accumulates rules for URI input.
type URLBuilder struct {
	core[*url.URL]
}

func NewURL(prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *URLBuilder {
	return &URLBuilder{core: newCore[*url.URL](prompt, validator.ParseURL, in, out, opts)}
}

// WithScheme requires the given scheme, compared case-insensitively.
func (b *URLBuilder) WithScheme(scheme string, msg ...string) *URLBuilder {
	b.add(rules.Scheme(scheme, msg...))
	return b
}

// WithHTTPS requires the https scheme.
func (b *URLBuilder) WithHTTPS(msg ...string) *URLBuilder {
	b.add(rules.HTTPSOnly(msg...))
	return b
}

// WithHTTPOrHTTPS requires http or https.
func (b *URLBuilder) WithHTTPOrHTTPS(msg ...string) *URLBuilder {
	b.add(rules.HTTPOrHTTPS(msg...))
	return b
}

// WithDomain requires the given host.
func (b *URLBuilder) WithDomain(domain string, msg ...string) *URLBuilder {
	b.add(rules.Domain(domain, msg...))
	return b
}

// WithOneOfDomains requires one of the given hosts.
func (b *URLBuilder) WithOneOfDomains(domains []string, msg ...string) *URLBuilder {
	b.add(rules.OneOfDomains(domains, msg...))
	return b
}

// WithPort requires port, falling back to the scheme's default port when
// the URI has none.
func (b *URLBuilder) WithPort(port int, msg ...string) *URLBuilder {
	b.add(rules.Port(port, msg...))
	return b
}

// WithAbsolute requires a scheme.
func (b *URLBuilder) WithAbsolute(msg ...string) *URLBuilder {
	b.add(rules.Absolute(msg...))
	return b
}

// WithPathPrefix requires the path to start with prefix.
func (b *URLBuilder) WithPathPrefix(prefix string, msg ...string) *URLBuilder {
	b.add(rules.PathPrefix(prefix, msg...))
	return b
}

// WithQuery requires a query string.
func (b *URLBuilder) WithQuery(msg ...string) *URLBuilder {
	b.add(rules.HasQuery(msg...))
	return b
}

// WithoutQuery rejects a query string.
func (b *URLBuilder) WithoutQuery(msg ...string) *URLBuilder {
	b.add(rules.NoQuery(msg...))
	return b
}

// WithFragment requires a #fragment.
func (b *URLBuilder) WithFragment(msg ...string) *URLBuilder {
	b.add(rules.HasFragment(msg...))
	return b
}

// WithLocalhost requires localhost or a loopback IP as host.
func (b *URLBuilder) WithLocalhost(msg ...string) *URLBuilder {
	b.add(rules.Localhost(msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *URLBuilder) WithCustom(check func(*url.URL) bool, message string) *URLBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *URLBuilder) WithRule(rule rules.Rule[*url.URL]) *URLBuilder {
	b.add(rule)
	return b
}
