package driven

import (
	"context"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// SnapshotStore persists exactly one index snapshot at a well-known
// location. Save must be atomic: a crash mid-save leaves the previously
// persisted snapshot intact and loadable.
type SnapshotStore interface {
	// Save durably writes the snapshot, replacing any previous one only
	// once the new snapshot is fully written.
	Save(ctx context.Context, snap *domain.Snapshot) error

	// Load reads the persisted snapshot. Returns domain.ErrIndexNotFound
	// when nothing has been persisted and domain.ErrIndexCorrupt when
	// the stored data fails structural or header validation.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Delete removes the persisted snapshot. Deleting an absent
	// snapshot is not an error.
	Delete(ctx context.Context) error
}
