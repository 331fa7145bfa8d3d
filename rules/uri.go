// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"net/netip"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"ftp":   21,
}

// Scheme accepts URIs using scheme, compared case-insensitively.
func Scheme(scheme string, msg ...string) Predicate[*url.URL] {
	return newPredicate("scheme",
		func(v *url.URL) bool { return v != nil && strings.EqualFold(v.Scheme, scheme) },
		fmt.Sprintf("URI must use the %s scheme", scheme), msg)
}

// HTTPSOnly accepts https URIs.
func HTTPSOnly(msg ...string) Predicate[*url.URL] {
	return newPredicate("https_only",
		func(v *url.URL) bool { return v != nil && strings.EqualFold(v.Scheme, "https") },
		"URI must use HTTPS", msg)
}

// HTTPOrHTTPS accepts http and https URIs.
func HTTPOrHTTPS(msg ...string) Predicate[*url.URL] {
	return newPredicate("http_or_https",
		func(v *url.URL) bool {
			return v != nil && (strings.EqualFold(v.Scheme, "http") || strings.EqualFold(v.Scheme, "https"))
		},
		"URI must use HTTP or HTTPS", msg)
}

// Domain accepts URIs whose host name equals domain, ignoring case.
func Domain(domain string, msg ...string) Predicate[*url.URL] {
	return newPredicate("domain",
		func(v *url.URL) bool { return v != nil && strings.EqualFold(v.Hostname(), domain) },
		fmt.Sprintf("URI must point to %s", domain), msg)
}

// OneOfDomains accepts URIs whose host name is one of domains.
func OneOfDomains(domains []string, msg ...string) Predicate[*url.URL] {
	set := make([]string, len(domains))
	for i, d := range domains {
		set[i] = strings.ToLower(d)
	}
	return newPredicate("one_of_domains",
		func(v *url.URL) bool { return v != nil && slices.Contains(set, strings.ToLower(v.Hostname())) },
		fmt.Sprintf("URI must point to one of: %s", strings.Join(domains, ", ")), msg)
}

// Port accepts URIs using port. A URI without an explicit port uses the
// default port of its scheme.
func Port(port int, msg ...string) Predicate[*url.URL] {
	return newPredicate("port",
		func(v *url.URL) bool {
			p, ok := effectivePort(v)
			return ok && p == port
		},
		fmt.Sprintf("URI must use port %d", port), msg)
}

// Absolute accepts URIs with a scheme.
func Absolute(msg ...string) Predicate[*url.URL] {
	return newPredicate("absolute",
		func(v *url.URL) bool { return v != nil && v.IsAbs() },
		"URI must be absolute", msg)
}

// PathPrefix accepts URIs whose path starts with prefix.
func PathPrefix(prefix string, msg ...string) Predicate[*url.URL] {
	return newPredicate("path_prefix",
		func(v *url.URL) bool { return v != nil && strings.HasPrefix(v.Path, prefix) },
		fmt.Sprintf("URI path must start with '%s'", prefix), msg)
}

// HasQuery accepts URIs with a non-empty query string.
func HasQuery(msg ...string) Predicate[*url.URL] {
	return newPredicate("has_query",
		func(v *url.URL) bool { return v != nil && v.RawQuery != "" },
		"URI must contain a query string", msg)
}

// NoQuery rejects URIs with a query string.
func NoQuery(msg ...string) Predicate[*url.URL] {
	return newPredicate("no_query",
		func(v *url.URL) bool { return v != nil && v.RawQuery == "" },
		"URI must not contain a query string", msg)
}

// HasFragment accepts URIs with a non-empty fragment.
func HasFragment(msg ...string) Predicate[*url.URL] {
	return newPredicate("has_fragment",
		func(v *url.URL) bool { return v != nil && v.Fragment != "" },
		"URI must contain a fragment", msg)
}

// Localhost accepts URIs pointing at "localhost" or a loopback address.
func Localhost(msg ...string) Predicate[*url.URL] {
	return newPredicate("localhost",
		func(v *url.URL) bool {
			if v == nil {
				return false
			}
			host := v.Hostname()
			if strings.EqualFold(host, "localhost") {
				return true
			}
			addr, err := netip.ParseAddr(host)
			return err == nil && addr.Unmap().IsLoopback()
		},
		"URI must point to localhost", msg)
}

func effectivePort(v *url.URL) (int, bool) {
	if v == nil {
		return 0, false
	}
	if p := v.Port(); p != "" {
		n, err := strconv.Atoi(p)
		return n, err == nil
	}
	n, ok := defaultPorts[strings.ToLower(v.Scheme)]
	return n, ok
}
