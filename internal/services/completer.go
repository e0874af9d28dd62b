package services

import (
	"context"

	"github.com/rizosfelices/rizotipo/internal/agent"
)

// Completer is the slice of the agent client the services need. Tests
// substitute a stub.
type Completer interface {
	Complete(ctx context.Context, request agent.Request) (string, error)
}
