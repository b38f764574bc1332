package util

import (
	"net"
	"strings"
)

// LANIPv4 returns the first private IPv4 address of an up, non-loopback
// interface, falling back to any IPv4 address. Empty when none is found.
func LANIPv4() string {
	var fallback string
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			if ip4 == nil {
				continue
			}
			if ip4.IsPrivate() {
				return ip4.String()
			}
			if fallback == "" {
				fallback = ip4.String()
			}
		}
	}
	return fallback
}

// ComposeURL builds the http URL under which a server bound to addr is
// reachable. Wildcard binds (0.0.0.0, ::, empty host) resolve to the LAN
// address via lanIP; path is appended as-is.
func ComposeURL(addr, path string, lanIP func() string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + path
	}
	h := strings.Trim(strings.TrimSpace(host), "[]")
	if h == "" || h == "0.0.0.0" || h == "::" {
		h = "127.0.0.1"
		if lanIP != nil {
			if lan := lanIP(); lan != "" {
				h = lan
			}
		}
	}
	return "http://" + net.JoinHostPort(h, port) + path
}
