package progrock_test

import (
	"context"
	"io"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/telemetry/progrock"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_VertexLifecycle(t *testing.T) {
	recorder := progrock.NewSummaryRecorder(io.Discard)
	ctx := context.Background()

	tests := []struct {
		name   string
		finish func(v ports.Vertex)
	}{
		{"restore dependencies-maven", func(v ports.Vertex) { v.Cached() }},
		{"restore dependencies-gradle", func(v ports.Vertex) { v.Complete(nil) }},
		{"save dependencies-npm", func(v ports.Vertex) { v.Complete(errors.New("archive failed")) }},
	}

	for _, tt := range tests {
		gotCtx, vertex := recorder.Record(ctx, tt.name)
		require.NotNil(t, gotCtx)
		require.NotNil(t, vertex)
		vertex.Log(domain.LogLevelInfo, tt.name)
		tt.finish(vertex)
	}

	require.NoError(t, recorder.Close())
}
