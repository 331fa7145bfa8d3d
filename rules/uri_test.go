// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestSchemeRules(t *testing.T) {
	https := mustURL(t, "https://example.com/a")
	http := mustURL(t, "HTTP://example.com/a")
	ftp := mustURL(t, "ftp://example.com/a")

	assert.True(t, Scheme("ftp").IsValid(ftp))
	assert.False(t, Scheme("ftp").IsValid(https))
	assert.True(t, HTTPSOnly().IsValid(https))
	assert.False(t, HTTPSOnly().IsValid(http))
	assert.True(t, HTTPOrHTTPS().IsValid(http))
	assert.False(t, HTTPOrHTTPS().IsValid(ftp))
	assert.Equal(t, "URI must use the ftp scheme", Scheme("ftp").Message())
}

func TestDomainRules(t *testing.T) {
	u := mustURL(t, "https://API.Example.com:8443/v1")

	assert.True(t, Domain("api.example.com").IsValid(u))
	assert.False(t, Domain("example.com").IsValid(u))
	assert.True(t, OneOfDomains([]string{"example.com", "api.example.com"}).IsValid(u))
	assert.False(t, OneOfDomains([]string{"example.org"}).IsValid(u))
}

// TestPort verifies that the scheme's default port applies when none is
// given explicitly.
func TestPort(t *testing.T) {
	assert.True(t, Port(443).IsValid(mustURL(t, "https://example.com")))
	assert.True(t, Port(80).IsValid(mustURL(t, "http://example.com/x")))
	assert.True(t, Port(8080).IsValid(mustURL(t, "http://example.com:8080")))
	assert.False(t, Port(80).IsValid(mustURL(t, "http://example.com:8080")))
	assert.False(t, Port(80).IsValid(mustURL(t, "custom://example.com")))
	assert.Equal(t, "URI must use port 443", Port(443).Message())
}

func TestShapeRules(t *testing.T) {
	full := mustURL(t, "https://example.com/api/v1/items?page=2#top")
	bare := mustURL(t, "/api/v1/items")

	assert.True(t, Absolute().IsValid(full))
	assert.False(t, Absolute().IsValid(bare))
	assert.True(t, PathPrefix("/api/").IsValid(full))
	assert.False(t, PathPrefix("/admin").IsValid(full))
	assert.True(t, HasQuery().IsValid(full))
	assert.False(t, HasQuery().IsValid(bare))
	assert.True(t, NoQuery().IsValid(bare))
	assert.False(t, NoQuery().IsValid(full))
	assert.True(t, HasFragment().IsValid(full))
	assert.False(t, HasFragment().IsValid(bare))
}

func TestLocalhost(t *testing.T) {
	r := Localhost()

	assert.True(t, r.IsValid(mustURL(t, "http://localhost:3000")))
	assert.True(t, r.IsValid(mustURL(t, "http://127.0.0.1/")))
	assert.True(t, r.IsValid(mustURL(t, "http://[::1]:8080/")))
	assert.False(t, r.IsValid(mustURL(t, "http://example.com")))
	assert.False(t, r.IsValid(nil))
}
