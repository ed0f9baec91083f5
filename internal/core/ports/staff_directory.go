package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
)

// StaffDirectory resolves staff identifiers to display names for event
// payloads. Lookups are best-effort: callers fall back to the raw identifier
// when the directory cannot resolve one.
type StaffDirectory interface {
	FullName(ctx context.Context, staffID kernel.UUID) (string, error)
}
