package registryresolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/devantler-tech/wilder/pkg/registry"
	"github.com/devantler-tech/wilder/pkg/utils/logging"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingURL is returned when set is called without a URL.
	ErrMissingURL = errors.New("usage: wilder set-registry <url>")
	// ErrCancelled is returned when the operator declines to save an unreachable registry.
	ErrCancelled = errors.New("operation cancelled")
)

// unreachablePrompt is the question asked before saving an unreachable registry.
const unreachablePrompt = "Registry is not reachable. Save it anyway?"

// Store persists the registry record.
type Store interface {
	Current() string
	Write(url registry.URL) error
	Delete() error
}

// Prober checks whether a registry is reachable.
type Prober interface {
	Probe(ctx context.Context, url registry.URL) bool
}

// Consenter asks the operator a yes/no question.
type Consenter interface {
	Ask(prompt string) (bool, error)
}

// SetOptions tunes a single Set call.
type SetOptions struct {
	// AssumeYes persists unreachable registries without asking.
	AssumeYes bool
}

// Resolver combines normalization, probing, consent and persistence.
type Resolver struct {
	store   Store
	prober  Prober
	consent Consenter
	writer  io.Writer
	logger  logrus.FieldLogger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConsent sets the consenter used for unreachable registries.
// Without one, unreachable registries are cancelled unless SetOptions.AssumeYes is set.
func WithConsent(consent Consenter) Option {
	return func(r *Resolver) {
		r.consent = consent
	}
}

// WithWriter sets where warnings are written.
func WithWriter(writer io.Writer) Option {
	return func(r *Resolver) {
		if writer != nil {
			r.writer = writer
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver over store and prober.
func New(store Store, prober Prober, opts ...Option) *Resolver {
	resolver := &Resolver{
		store:  store,
		prober: prober,
		writer: os.Stdout,
		logger: logging.Discard(),
	}

	for _, opt := range opts {
		opt(resolver)
	}

	return resolver
}

// Current returns the registry to pass to the package manager.
func (r *Resolver) Current() string {
	return r.store.Current()
}

// Reset removes the persisted registry and returns the default one.
func (r *Resolver) Reset() (string, error) {
	err := r.store.Delete()
	if err != nil {
		return "", fmt.Errorf("reset registry: %w", err)
	}

	return registry.DefaultURL.String(), nil
}

// Set normalizes input, checks that it is reachable and persists it.
// If the registry is unreachable the operator is asked for consent first.
func (r *Resolver) Set(ctx context.Context, input string, opts SetOptions) (registry.URL, error) {
	if input == "" {
		return registry.URL{}, ErrMissingURL
	}

	r.transition(StateStart, StateNormalizing)

	normalized, err := registry.Normalize(input)
	if err != nil {
		return registry.URL{}, err //nolint:wrapcheck // already carries ErrInvalidURL context
	}

	r.transition(StateNormalizing, StateProbing)

	if r.prober.Probe(ctx, normalized) {
		r.transition(StateProbing, StateAccepted)

		return r.persist(StateAccepted, normalized)
	}

	r.transition(StateProbing, StateAwaitingConsent)
	notify.Warningf(r.writer, "%s is not reachable", normalized)

	consented, err := r.askConsent(opts)
	if err != nil {
		return registry.URL{}, err
	}

	if !consented {
		r.transition(StateAwaitingConsent, StateCancelled)

		return registry.URL{}, ErrCancelled
	}

	return r.persist(StateAwaitingConsent, normalized)
}

func (r *Resolver) askConsent(opts SetOptions) (bool, error) {
	if opts.AssumeYes {
		notify.Infof(r.writer, "Saving without confirmation")

		return true, nil
	}

	if r.consent == nil {
		return false, nil
	}

	consented, err := r.consent.Ask(unreachablePrompt)
	if err != nil {
		return false, fmt.Errorf("ask for consent: %w", err)
	}

	return consented, nil
}

func (r *Resolver) persist(from State, normalized registry.URL) (registry.URL, error) {
	err := r.store.Write(normalized)
	if err != nil {
		return registry.URL{}, fmt.Errorf("save registry: %w", err)
	}

	r.transition(from, StatePersisted)

	return normalized, nil
}

func (r *Resolver) transition(from, to State) {
	r.logger.WithField("from", from.String()).WithField("to", to.String()).Debug("set-registry transition")
}
