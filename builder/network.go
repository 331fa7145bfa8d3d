// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"net/netip"

	"github.com/MKhiriev/go-input-guard/rules"
	"github.com/MKhiriev/go-input-guard/validator"
)

// IPBuilder accumulates rules for IP address input.
type IPBuilder struct {
	core[netip.Addr]
}

func NewIP(prompt string, in validator.InputProvider, out validator.OutputProvider, opts ...validator.Option) *IPBuilder {
	return &IPBuilder{core: newCore[netip.Addr](prompt, validator.ParseAddr, in, out, opts)}
}

// WithIPv4 requires an IPv4 address, including IPv4-mapped IPv6.
func (b *IPBuilder) WithIPv4(msg ...string) *IPBuilder {
	b.add(rules.IPv4(msg...))
	return b
}

// WithIPv6 requires a native IPv6 address.
func (b *IPBuilder) WithIPv6(msg ...string) *IPBuilder {
	b.add(rules.IPv6(msg...))
	return b
}

// WithPrivate requires an address in 10/8, 172.16/12, 192.168/16 or the
// APIPA range 169.254/16.
func (b *IPBuilder) WithPrivate(msg ...string) *IPBuilder {
	b.add(rules.PrivateIP(msg...))
	return b
}

// WithLoopback requires a loopback address.
func (b *IPBuilder) WithLoopback(msg ...string) *IPBuilder {
	b.add(rules.Loopback(msg...))
	return b
}

// WithPublic rejects private and loopback addresses.
func (b *IPBuilder) WithPublic(msg ...string) *IPBuilder {
	b.add(rules.PublicIP(msg...))
	return b
}

// WithSubnet requires an address inside network/prefixLen.
func (b *IPBuilder) WithSubnet(network netip.Addr, prefixLen int, msg ...string) *IPBuilder {
	b.add(rules.InSubnet(network, prefixLen, msg...))
	return b
}

// WithOneOf accepts only the listed addresses.
func (b *IPBuilder) WithOneOf(allowed []netip.Addr, msg ...string) *IPBuilder {
	b.add(rules.OneOfAddrs(allowed, msg...))
	return b
}

// WithNoneOf rejects the listed addresses.
func (b *IPBuilder) WithNoneOf(excluded []netip.Addr, msg ...string) *IPBuilder {
	b.add(rules.NoneOfAddrs(excluded, msg...))
	return b
}

// WithCustom adds a rule from check that reports message when check returns
// false.
func (b *IPBuilder) WithCustom(check func(netip.Addr) bool, message string) *IPBuilder {
	b.add(rules.Custom(check, message))
	return b
}

// WithRule appends a prebuilt rule.
func (b *IPBuilder) WithRule(rule rules.Rule[netip.Addr]) *IPBuilder {
	b.add(rule)
	return b
}
