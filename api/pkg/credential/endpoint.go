package credential

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/helixml/geveze/api/pkg/config"
)

// RequestIsSecure reports whether the client reached the gateway over TLS.
// X-Forwarded-Proto is only honoured when the gateway sits behind a proxy that
// is trusted to set it, client supplied scheme hints are never consulted.
func RequestIsSecure(r *http.Request, trustForwardedProto bool) bool {
	if r.TLS != nil {
		return true
	}
	if !trustForwardedProto {
		return false
	}
	proto := r.Header.Get("X-Forwarded-Proto")
	// a proxy chain may append, the first entry is the client facing hop
	if i := strings.Index(proto, ","); i >= 0 {
		proto = proto[:i]
	}
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}

// ResolveEndpoint picks the media endpoint for a client. Secure clients must get
// a wss:// endpoint, a page served over https cannot open a plain ws:// socket.
func ResolveEndpoint(cfg config.LiveKit, secure bool) (string, error) {
	if secure {
		if isScheme(cfg.SecureURL, "wss") {
			return cfg.SecureURL, nil
		}
		if isScheme(cfg.URL, "wss") {
			return cfg.URL, nil
		}
		return "", ErrNoEndpoint
	}

	if cfg.URL != "" {
		return cfg.URL, nil
	}
	if cfg.SecureURL != "" {
		return cfg.SecureURL, nil
	}
	return "", ErrNoEndpoint
}

// RoomServiceURL is the server API address for room management calls
func RoomServiceURL(cfg config.LiveKit) string {
	if cfg.RoomServiceURL != "" {
		return cfg.RoomServiceURL
	}
	base := cfg.URL
	if base == "" {
		base = cfg.SecureURL
	}
	switch {
	case strings.HasPrefix(base, "ws://"):
		return "http://" + strings.TrimPrefix(base, "ws://")
	case strings.HasPrefix(base, "wss://"):
		return "https://" + strings.TrimPrefix(base, "wss://")
	}
	return base
}

func isScheme(raw, scheme string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, scheme) && u.Host != ""
}
