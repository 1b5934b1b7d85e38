package server

import (
	"net/http"
	"net/url"
	"time"
)

// AssetPrefix is where fingerprinted assets are served.
const AssetPrefix = "/assets/"

// DefaultReloadPath is where the live reload websocket is mounted.
const DefaultReloadPath = "/_animate/reload"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Address is the listen address. Default: ":8080".
	Address string

	// Title is the demo page title.
	Title string

	// Pretty enables indented HTML output.
	Pretty bool

	// ReloadPath is the websocket path announced to the client script when a
	// reload handler is installed. Default: DefaultReloadPath.
	ReloadPath string

	// MaxApplyBytes limits the body of POST /api/apply. Default: 1 MiB.
	MaxApplyBytes int64

	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are
	// used for the logged client address. Default: none.
	TrustedProxies []string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10s.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		Title:             "neo animate",
		ReloadPath:        DefaultReloadPath,
		MaxApplyBytes:     1 << 20,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// applyDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) applyDefaults() {
	d := DefaultServerConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.ReloadPath == "" {
		c.ReloadPath = d.ReloadPath
	}
	if c.MaxApplyBytes <= 0 {
		c.MaxApplyBytes = d.MaxApplyBytes
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = d.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
}

// Clone returns a copy of the ServerConfig.
func (c *ServerConfig) Clone() *ServerConfig {
	if c == nil {
		return nil
	}
	clone := *c
	clone.TrustedProxies = append([]string(nil), c.TrustedProxies...)
	return &clone
}

// WithAddress returns a copy with the listen address replaced.
func (c *ServerConfig) WithAddress(addr string) *ServerConfig {
	clone := c.Clone()
	clone.Address = addr
	return clone
}

// SameOriginCheck accepts websocket requests whose Origin host matches the
// request host. Requests without an Origin header are accepted.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}
