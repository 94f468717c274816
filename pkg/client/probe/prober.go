package probe

import (
	"context"
	"net/url"
	"time"

	"github.com/devantler-tech/wilder/pkg/registry"
	"github.com/devantler-tech/wilder/pkg/utils/logging"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout is the time budget for a single reachability check.
const DefaultTimeout = 5 * time.Second

// Prober classifies registry URLs as reachable or not.
type Prober struct {
	timeout    time.Duration
	transports map[string]Transport
	logger     logrus.FieldLogger
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout overrides the check timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithTransport registers the transport used for a URL scheme.
func WithTransport(scheme string, transport Transport) Option {
	return func(p *Prober) {
		p.transports[scheme] = transport
	}
}

// WithLogger sets the logger for probe diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Prober) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Prober with plain http and TLS https transports.
func New(opts ...Option) *Prober {
	prober := &Prober{
		timeout:    DefaultTimeout,
		transports: make(map[string]Transport, 2),
		logger:     logging.Discard(),
	}

	for _, opt := range opts {
		opt(prober)
	}

	if _, ok := prober.transports["http"]; !ok {
		prober.transports["http"] = NewHTTPTransport(nil, prober.logger)
	}

	if _, ok := prober.transports["https"]; !ok {
		prober.transports["https"] = NewTLSTransport(prober.logger)
	}

	return prober
}

// Timeout returns the configured check timeout.
func (p *Prober) Timeout() time.Duration {
	return p.timeout
}

// Probe reports whether target is reachable. It never fails: unsupported schemes,
// transport errors and timeouts all yield false.
func (p *Prober) Probe(ctx context.Context, target registry.URL) bool {
	parsed, err := url.Parse(target.String())
	if err != nil {
		p.logger.WithError(err).Debug("probe target is not a URL")

		return false
	}

	transport, ok := p.transports[parsed.Scheme]
	if !ok {
		p.logger.Debugf("no probe transport for scheme %q", parsed.Scheme)

		return false
	}

	return transport.Exists(ctx, target.String(), p.timeout)
}
