package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports/mocks"
	"go.trai.ch/depcache/internal/engine/composer"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app    *app.App
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	hasher := mocks.NewMockFileHasher(ctrl)
	h.app = app.New(
		h.loader,
		mocks.NewMockTriggerSource(ctrl),
		composer.NewComposer(hasher, h.logger),
		mocks.NewMockPathResolver(ctrl),
		mocks.NewMockCacheServiceFactory(ctrl),
		mocks.NewMockStateStoreFactory(ctrl),
		mocks.NewMockTelemetry(ctrl),
		h.logger,
	)
	return h
}

func (h *harness) provider() ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    h.app,
			Logger: h.logger,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, h.provider())
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "depcache version")
}

// TestRun_CommandError verifies that command errors are logged and exit with 1.
func TestRun_CommandError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigNotFound)
	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	exitCode := run(context.Background(), []string{"keys"}, new(bytes.Buffer), new(bytes.Buffer), h.provider())
	assert.Equal(t, 1, exitCode)
}

// TestRun_ProviderError verifies that initialization errors are written to stderr.
func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	exitCode := run(context.Background(), []string{"keys"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}

// TestRun_AppliesOptions verifies that options are applied to the App before execution.
func TestRun_AppliesOptions(t *testing.T) {
	h := newHarness(t)
	applied := false

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), h.provider(),
		func(a *app.App) {
			applied = a == h.app
		})
	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
