package progrock_test

import (
	"context"
	"io"
	"testing"

	"go.trai.ch/depcache/internal/adapters/telemetry/progrock"
	"go.trai.ch/depcache/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	// 1. Initialize the Recorder
	recorder := progrock.NewSummaryRecorder(io.Discard)

	// 2. Start a restore step
	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "restore dependencies-maven")

	// 3. Write to Stdout
	if _, err := vertex.Stdout().Write([]byte("restored dependencies-maven-Linux-main\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}

	// 4. Log a debug message
	vertex.Log(domain.LogLevelDebug, "dependencyDeclarationHash=0123456789abcdef")

	// 5. Complete the vertex
	vertex.Complete(nil)

	// 6. Close the recorder
	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
