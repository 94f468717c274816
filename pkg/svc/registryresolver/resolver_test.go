package registryresolver_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/devantler-tech/wilder/pkg/io/configstore"
	"github.com/devantler-tech/wilder/pkg/registry"
	"github.com/devantler-tech/wilder/pkg/svc/registryresolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errConsentBroken = errors.New("input closed")

type mockProber struct {
	mock.Mock
}

func (m *mockProber) Probe(ctx context.Context, url registry.URL) bool {
	args := m.Called(ctx, url)

	return args.Bool(0)
}

type mockConsenter struct {
	mock.Mock
}

func (m *mockConsenter) Ask(prompt string) (bool, error) {
	args := m.Called(prompt)

	return args.Bool(0), args.Error(1)
}

type fixture struct {
	store    *configstore.Store
	prober   *mockProber
	consent  *mockConsenter
	out      *bytes.Buffer
	resolver *registryresolver.Resolver
}

func mustNormalize(t *testing.T, raw string) registry.URL {
	t.Helper()

	normalized, err := registry.Normalize(raw)
	require.NoError(t, err)

	return normalized
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	out := &bytes.Buffer{}
	store := configstore.New(t.TempDir(), configstore.WithWriter(out))
	prober := &mockProber{}
	consent := &mockConsenter{}

	return &fixture{
		store:   store,
		prober:  prober,
		consent: consent,
		out:     out,
		resolver: registryresolver.New(
			store,
			prober,
			registryresolver.WithConsent(consent),
			registryresolver.WithWriter(out),
		),
	}
}

func TestSet_ReachablePersistsWithoutAsking(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.prober.On("Probe", mock.Anything, mustNormalize(t, "https://registry.npmjs.org/")).Return(true)

	got, err := f.resolver.Set(context.Background(), "https://registry.npmjs.org", registryresolver.SetOptions{})

	require.NoError(t, err)
	assert.Equal(t, mustNormalize(t, "https://registry.npmjs.org/"), got)
	assert.Equal(t, "https://registry.npmjs.org/", f.resolver.Current())
	f.prober.AssertExpectations(t)
	f.consent.AssertNotCalled(t, "Ask", mock.Anything)
}

func TestSet_InvalidURLPersistsNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	got, err := f.resolver.Set(context.Background(), "ftp://example.com/", registryresolver.SetOptions{})

	require.ErrorIs(t, err, registry.ErrInvalidURL)
	assert.Empty(t, got)
	assert.Equal(t, registry.DefaultURL.String(), f.resolver.Current())
	f.prober.AssertNotCalled(t, "Probe", mock.Anything, mock.Anything)
	f.consent.AssertNotCalled(t, "Ask", mock.Anything)
}

func TestSet_MissingURL(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.resolver.Set(context.Background(), "", registryresolver.SetOptions{})

	require.ErrorIs(t, err, registryresolver.ErrMissingURL)
}

func TestSet_UnreachableDeclinedCancels(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.prober.On("Probe", mock.Anything, mustNormalize(t, "https://unreachable.invalid/")).Return(false)
	f.consent.On("Ask", mock.AnythingOfType("string")).Return(false, nil).Once()

	got, err := f.resolver.Set(context.Background(), "https://unreachable.invalid/", registryresolver.SetOptions{})

	require.ErrorIs(t, err, registryresolver.ErrCancelled)
	assert.Empty(t, got)
	assert.Equal(t, registry.DefaultURL.String(), f.resolver.Current())
	assert.Contains(t, f.out.String(), "https://unreachable.invalid/ is not reachable")
	f.consent.AssertExpectations(t)
}

func TestSet_UnreachableAcceptedPersists(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.prober.On("Probe", mock.Anything, mustNormalize(t, "https://unreachable.invalid/")).Return(false)
	f.consent.On("Ask", mock.AnythingOfType("string")).Return(true, nil).Once()

	got, err := f.resolver.Set(context.Background(), "https://unreachable.invalid/", registryresolver.SetOptions{})

	require.NoError(t, err)
	assert.Equal(t, mustNormalize(t, "https://unreachable.invalid/"), got)
	assert.Equal(t, "https://unreachable.invalid/", f.resolver.Current())
	f.consent.AssertExpectations(t)
}

func TestSet_UnreachableAssumeYesSkipsConsent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.prober.On("Probe", mock.Anything, mock.Anything).Return(false)

	got, err := f.resolver.Set(
		context.Background(),
		"https://unreachable.invalid",
		registryresolver.SetOptions{AssumeYes: true},
	)

	require.NoError(t, err)
	assert.Equal(t, mustNormalize(t, "https://unreachable.invalid/"), got)
	assert.Contains(t, f.out.String(), "ℹ Saving without confirmation")
	f.consent.AssertNotCalled(t, "Ask", mock.Anything)
}

func TestSet_UnreachableWithoutConsenterCancels(t *testing.T) {
	t.Parallel()

	store := configstore.New(t.TempDir())
	prober := &mockProber{}
	prober.On("Probe", mock.Anything, mock.Anything).Return(false)

	resolver := registryresolver.New(store, prober, registryresolver.WithWriter(&bytes.Buffer{}))

	_, err := resolver.Set(context.Background(), "https://unreachable.invalid/", registryresolver.SetOptions{})

	require.ErrorIs(t, err, registryresolver.ErrCancelled)
	assert.Equal(t, registry.DefaultURL.String(), store.Current())
}

func TestSet_ConsentErrorPropagates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.prober.On("Probe", mock.Anything, mock.Anything).Return(false)
	f.consent.On("Ask", mock.Anything).Return(false, errConsentBroken)

	_, err := f.resolver.Set(context.Background(), "https://unreachable.invalid/", registryresolver.SetOptions{})

	require.ErrorIs(t, err, errConsentBroken)
	assert.NotErrorIs(t, err, registryresolver.ErrCancelled)
	assert.Equal(t, registry.DefaultURL.String(), f.resolver.Current())
}

func TestReset_IsIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.store.Write(mustNormalize(t, "https://registry.npmjs.org/")))

	for range 2 {
		got, err := f.resolver.Reset()

		require.NoError(t, err)
		assert.Equal(t, registry.DefaultURL.String(), got)
		assert.Equal(t, registry.DefaultURL.String(), f.resolver.Current())
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Start", registryresolver.StateStart.String())
	assert.Equal(t, "AwaitingConsent", registryresolver.StateAwaitingConsent.String())
	assert.Equal(t, "Cancelled", registryresolver.StateCancelled.String())
	assert.Equal(t, "Unknown", registryresolver.State(42).String())
}
