package server

import (
	"net/http/httptest"
	"testing"
)

func TestClientAddr(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		trusted []string
		want    string
	}{
		{
			name:    "untrusted peer ignores forwarded",
			remote:  "198.51.100.10:1234",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.5"},
			trusted: []string{"203.0.113.1"},
			want:    "198.51.100.10",
		},
		{
			name:    "trusted peer uses right-most untrusted hop",
			remote:  "203.0.113.10:1234",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 203.0.113.11, 192.0.2.20"},
			trusted: []string{"203.0.113.10", "203.0.113.11"},
			want:    "192.0.2.20",
		},
		{
			name:    "all hops trusted uses left-most",
			remote:  "203.0.113.10:1234",
			headers: map[string]string{"Forwarded": `for=192.0.2.1, for=192.0.2.2`},
			trusted: []string{"203.0.113.10", "192.0.2.0/24"},
			want:    "192.0.2.1",
		},
		{
			name:    "forwarded ipv6 with port",
			remote:  "10.0.0.1:80",
			headers: map[string]string{"Forwarded": `for="[2001:db8::1]:4711";proto=https`},
			trusted: []string{"10.0.0.0/8"},
			want:    "2001:db8::1",
		},
		{
			name:    "unknown hops are skipped",
			remote:  "10.0.0.1:80",
			headers: map[string]string{"X-Forwarded-For": "unknown, , 192.0.2.9"},
			trusted: []string{"10.0.0.1"},
			want:    "192.0.2.9",
		},
		{
			name:   "no trusted proxies",
			remote: "[2001:db8::2]:9000",
			want:   "2001:db8::2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "http://example.com", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			got, ok := clientAddr(req, parseTrustedProxies(tt.trusted, nil))
			if !ok || got.String() != tt.want {
				t.Errorf("clientAddr() = %v, %v; want %s", got, ok, tt.want)
			}
		})
	}
}

func TestClientAddrInvalidRemote(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com", nil)
	req.RemoteAddr = "not-an-ip"
	if _, ok := clientAddr(req, nil); ok {
		t.Error("expected no address for an invalid RemoteAddr")
	}
}

func TestParseTrustedProxiesSkipsInvalid(t *testing.T) {
	got := parseTrustedProxies([]string{"", "bogus", "10.0.0.0/33", "10.1.2.3", "192.168.0.0/16"}, nil)
	if len(got) != 2 {
		t.Fatalf("parseTrustedProxies() = %v, want 2 entries", got)
	}
}
