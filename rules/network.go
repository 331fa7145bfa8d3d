// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"net/netip"
	"slices"
	"strings"
)

// IPv4 accepts IPv4 addresses, including IPv4-mapped IPv6 ones.
func IPv4(msg ...string) Predicate[netip.Addr] {
	return newPredicate("ipv4",
		func(v netip.Addr) bool { return v.Unmap().Is4() },
		"Address must be an IPv4 address", msg)
}

// IPv6 accepts native IPv6 addresses.
func IPv6(msg ...string) Predicate[netip.Addr] {
	return newPredicate("ipv6",
		func(v netip.Addr) bool { return v.Is6() && !v.Is4In6() },
		"Address must be an IPv6 address", msg)
}

// PrivateIP accepts IPv4 addresses in 10.0.0.0/8, 172.16.0.0/12,
// 192.168.0.0/16 and the APIPA range 169.254.0.0/16.
func PrivateIP(msg ...string) Predicate[netip.Addr] {
	return newPredicate("private_ip",
		isPrivate,
		"Address must be in a private range", msg)
}

// Loopback accepts 127.0.0.0/8 and ::1.
func Loopback(msg ...string) Predicate[netip.Addr] {
	return newPredicate("loopback",
		func(v netip.Addr) bool { return v.Unmap().IsLoopback() },
		"Address must be a loopback address", msg)
}

// PublicIP accepts addresses that are neither private nor loopback.
func PublicIP(msg ...string) Predicate[netip.Addr] {
	return newPredicate("public_ip",
		func(v netip.Addr) bool { return v.IsValid() && !isPrivate(v) && !v.Unmap().IsLoopback() },
		"Address must be a public address", msg)
}

// InSubnet accepts addresses whose first prefixLen bits equal those of
// network. An address of the other family never matches.
func InSubnet(network netip.Addr, prefixLen int, msg ...string) Predicate[netip.Addr] {
	network = network.Unmap()
	prefix, err := network.Prefix(prefixLen)
	return newPredicate("in_subnet",
		func(v netip.Addr) bool { return err == nil && prefix.Contains(v.Unmap()) },
		fmt.Sprintf("Address must be in subnet %s/%d", network, prefixLen), msg)
}

// OneOfAddrs accepts only the listed addresses.
func OneOfAddrs(allowed []netip.Addr, msg ...string) Predicate[netip.Addr] {
	set := slices.Clone(allowed)
	return newPredicate("one_of_addrs",
		func(v netip.Addr) bool { return slices.Contains(set, v) },
		fmt.Sprintf("Address must be one of: %s", joinAddrs(set)), msg)
}

// NoneOfAddrs rejects the listed addresses.
func NoneOfAddrs(excluded []netip.Addr, msg ...string) Predicate[netip.Addr] {
	set := slices.Clone(excluded)
	return newPredicate("none_of_addrs",
		func(v netip.Addr) bool { return !slices.Contains(set, v) },
		fmt.Sprintf("Address must not be one of: %s", joinAddrs(set)), msg)
}

func isPrivate(v netip.Addr) bool {
	v = v.Unmap()
	if !v.Is4() {
		return false
	}
	b := v.As4()
	switch {
	case b[0] == 10:
		return true
	case b[0] == 172 && b[1] >= 16 && b[1] <= 31:
		return true
	case b[0] == 192 && b[1] == 168:
		return true
	case b[0] == 169 && b[1] == 254:
		return true
	}
	return false
}

func joinAddrs(addrs []netip.Addr) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
