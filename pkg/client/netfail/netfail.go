// Package netfail classifies failed network checks into short, human-readable reasons.
package netfail

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Reasons reported for failed reachability checks.
const (
	ReasonTimeout           = "timed out"
	ReasonConnectionRefused = "connection refused"
	ReasonConnectionReset   = "connection reset"
	ReasonDNS               = "host could not be resolved"
	ReasonTLS               = "TLS handshake failed"
	ReasonUnknown           = "request failed"
)

// textPatterns maps transport error fragments to reasons, checked in order.
//
//nolint:gochecknoglobals // static lookup table
var textPatterns = []struct {
	pattern string
	reason  string
}{
	{"i/o timeout", ReasonTimeout},
	{"Client.Timeout exceeded", ReasonTimeout},
	{"TLS handshake timeout", ReasonTimeout},
	{"connection refused", ReasonConnectionRefused},
	{"connection reset by peer", ReasonConnectionReset},
	{"unexpected EOF", ReasonConnectionReset},
	{"no such host", ReasonDNS},
	{"tls:", ReasonTLS},
	{"x509:", ReasonTLS},
}

// Reason returns a short description of why a request could not be completed.
// It returns an empty string for a nil error.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ReasonDNS
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return ReasonTLS
	}

	errMsg := err.Error()

	for _, entry := range textPatterns {
		if strings.Contains(errMsg, entry.pattern) {
			return entry.reason
		}
	}

	return ReasonUnknown
}

// StatusReason describes an HTTP status code that does not prove reachability.
func StatusReason(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return fmt.Sprintf("unexpected status %d", code)
	}

	return fmt.Sprintf("server responded %d %s", code, text)
}
