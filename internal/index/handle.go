package index

import (
	"sync/atomic"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// Handle is the explicitly owned, atomically swappable reference to the
// active snapshot. Readers load the pointer once and keep querying the
// snapshot they started with; a concurrent swap never affects an
// in-flight query. There is no process-wide singleton: the handle is
// created at startup and passed to the services that need it.
type Handle struct {
	ptr atomic.Pointer[domain.Snapshot]
}

// NewHandle creates an empty handle. Pass the snapshot loaded from disk
// to Swap once startup validation succeeds.
func NewHandle() *Handle {
	return &Handle{}
}

// Active returns the currently active snapshot, or
// domain.ErrIndexNotFound when no ingestion has succeeded yet.
func (h *Handle) Active() (*domain.Snapshot, error) {
	snap := h.ptr.Load()
	if snap == nil {
		return nil, domain.ErrIndexNotFound
	}
	return snap, nil
}

// Swap atomically replaces the active snapshot. Readers in flight keep
// the snapshot they loaded; new readers see the replacement.
func (h *Handle) Swap(snap *domain.Snapshot) {
	h.ptr.Store(snap)
}

// Clear invalidates the active snapshot reference. Subsequent queries
// fail with domain.ErrIndexNotFound until a new snapshot is swapped in.
func (h *Handle) Clear() {
	h.ptr.Store(nil)
}
