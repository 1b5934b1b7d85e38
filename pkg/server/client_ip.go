package server

import (
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
)

// trustedProxies matches peers whose forwarding headers are believed.
type trustedProxies []netip.Prefix

// parseTrustedProxies accepts single addresses and CIDR ranges. Invalid
// entries are logged and skipped.
func parseTrustedProxies(entries []string, logger *slog.Logger) trustedProxies {
	var out trustedProxies
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				if logger != nil {
					logger.Warn("invalid trusted proxy CIDR", "entry", entry, "error", err)
				}
				continue
			}
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			if logger != nil {
				logger.Warn("invalid trusted proxy IP", "entry", entry)
			}
			continue
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out
}

func (t trustedProxies) contains(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range t {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// clientAddr returns the address of the client behind r. Forwarding headers
// are only consulted when the peer is trusted; the right-most untrusted hop
// wins.
func clientAddr(r *http.Request, trusted trustedProxies) (netip.Addr, bool) {
	peer, ok := parseHost(r.RemoteAddr)
	if !ok {
		return netip.Addr{}, false
	}
	if !trusted.contains(peer) {
		return peer, true
	}

	hops := forwardedFor(r.Header.Get("Forwarded"))
	if len(hops) == 0 {
		hops = xForwardedFor(r.Header.Get("X-Forwarded-For"))
	}
	if len(hops) == 0 {
		return peer, true
	}
	for i := len(hops) - 1; i >= 0; i-- {
		if !trusted.contains(hops[i]) {
			return hops[i], true
		}
	}
	return hops[0], true
}

// forwardedFor extracts the for= parameters of an RFC 7239 header.
func forwardedFor(header string) []netip.Addr {
	var out []netip.Addr
	for _, element := range strings.Split(header, ",") {
		for _, param := range strings.Split(element, ";") {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "for") {
				continue
			}
			if addr, ok := parseHost(value); ok {
				out = append(out, addr)
			}
		}
	}
	return out
}

func xForwardedFor(header string) []netip.Addr {
	var out []netip.Addr
	for _, part := range strings.Split(header, ",") {
		if addr, ok := parseHost(part); ok {
			out = append(out, addr)
		}
	}
	return out
}

// parseHost parses "ip", "ip:port", "[ipv6]:port" and quoted forms.
func parseHost(value string) (netip.Addr, bool) {
	value = strings.Trim(strings.TrimSpace(value), `"`)
	if value == "" || strings.EqualFold(value, "unknown") {
		return netip.Addr{}, false
	}
	if ap, err := netip.ParseAddrPort(value); err == nil {
		return ap.Addr().Unmap(), true
	}
	value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	if zone := strings.IndexByte(value, '%'); zone != -1 {
		value = value[:zone]
	}
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
