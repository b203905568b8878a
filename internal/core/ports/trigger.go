package ports

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
)

// TriggerSource resolves the CI event of the current run.
//
//go:generate go run go.uber.org/mock/mockgen -source=trigger.go -destination=mocks/mock_trigger.go -package=mocks
type TriggerSource interface {
	// Detect reads the trigger from the CI environment.
	Detect(ctx context.Context) (domain.Trigger, error)
}
