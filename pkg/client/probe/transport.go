package probe

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/devantler-tech/wilder/pkg/client/netfail"
	"github.com/devantler-tech/wilder/pkg/utils/logging"
	"github.com/sirupsen/logrus"
)

// Transport performs an existence check and reports whether the target answered.
type Transport interface {
	Exists(ctx context.Context, target string, timeout time.Duration) bool
}

// HTTPTransport checks existence with a HEAD request over the wrapped round tripper.
type HTTPTransport struct {
	roundTripper http.RoundTripper
	logger       logrus.FieldLogger
}

// NewHTTPTransport creates a transport over the given round tripper.
// A nil round tripper defaults to a plain-text transport.
func NewHTTPTransport(roundTripper http.RoundTripper, logger logrus.FieldLogger) *HTTPTransport {
	if roundTripper == nil {
		roundTripper = newPlainRoundTripper()
	}

	if logger == nil {
		logger = logging.Discard()
	}

	return &HTTPTransport{roundTripper: roundTripper, logger: logger}
}

// NewTLSTransport creates a transport that requires TLS 1.2 or newer.
func NewTLSTransport(logger logrus.FieldLogger) *HTTPTransport {
	roundTripper := newPlainRoundTripper()
	roundTripper.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}

	return NewHTTPTransport(roundTripper, logger)
}

// Exists issues a HEAD request against target. Redirects are not followed.
func (t *HTTPTransport) Exists(ctx context.Context, target string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := &http.Client{
		Transport: t.roundTripper,
		Timeout:   timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		t.logger.WithError(err).Debug("failed to build probe request")

		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		t.logger.WithField("reason", netfail.Reason(err)).WithError(err).Debugf("probe of %s failed", target)

		return false
	}

	_ = resp.Body.Close()

	if !IsAccessibleStatus(resp.StatusCode) {
		t.logger.WithField("reason", netfail.StatusReason(resp.StatusCode)).Debugf("probe of %s failed", target)

		return false
	}

	t.logger.WithField("status", resp.StatusCode).Debugf("probe of %s succeeded", target)

	return true
}

// IsAccessibleStatus reports whether a status code proves the registry host is reachable.
func IsAccessibleStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusInternalServerError
}

func newPlainRoundTripper() *http.Transport {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Transport{Proxy: http.ProxyFromEnvironment}
	}

	return transport.Clone()
}
