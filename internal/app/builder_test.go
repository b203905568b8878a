package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/adapters/logger"
	"go.trai.ch/depcache/internal/app"
)

func TestComponents_SetVerbose(t *testing.T) {
	t.Setenv(logger.DebugEnv, "")

	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)
	components := app.NewComponents(nil, log, nil)

	log.Debug("hidden")
	components.SetVerbose(true)
	log.Debug("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
