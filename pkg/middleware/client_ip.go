package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"museum-chat/pkg/utils"
)

// IPResolver finds the client address of a request. X-Forwarded-For and
// X-Real-IP are honoured only when the direct peer is a trusted proxy;
// anyone else could put any address there.
type IPResolver struct {
	trusted []netip.Prefix
}

// NewIPResolver accepts single addresses ("10.0.0.7") and CIDR ranges
// ("10.0.0.0/8"). No entries means proxy headers are always ignored.
func NewIPResolver(trusted []string) (*IPResolver, error) {
	r := &IPResolver{}
	for _, raw := range trusted {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			r.trusted = append(r.trusted, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		r.trusted = append(r.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return r, nil
}

func (r *IPResolver) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range r.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// Resolve returns the peer address unless it is a trusted proxy. Behind a
// trusted proxy the X-Forwarded-For chain is walked from the right and the
// first hop that is not a trusted proxy wins.
func (r *IPResolver) Resolve(req *http.Request) string {
	peer := remoteHost(req.RemoteAddr)
	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !r.isTrusted(peerAddr) {
		return peer
	}

	if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				// unreadable hop, the chain cannot be trusted past it
				break
			}
			if !r.isTrusted(hop) {
				return hop.Unmap().String()
			}
		}
	}

	if xri, err := netip.ParseAddr(strings.TrimSpace(req.Header.Get("X-Real-IP"))); err == nil {
		return xri.Unmap().String()
	}
	return peer
}

// RealIP stores the resolved client address in the request context for the
// logger, the rate limiter and the admin check.
func RealIP(resolver *IPResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := utils.SetClientIP(r.Context(), resolver.Resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP is the address set by RealIP, or the peer address when RealIP did
// not run.
func ClientIP(r *http.Request) string {
	if ip, ok := utils.GetClientIP(r.Context()); ok {
		return ip
	}
	return remoteHost(r.RemoteAddr)
}

func remoteHost(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
