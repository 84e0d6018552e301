package testutil

import (
	"sync"

	"github.com/tenantops/dugrow/pkg/types"
)

// MemoryCollector is an in-memory types.Collector. Roots map to the
// snapshot to return; unknown roots return Err (or an empty snapshot
// when Err is nil).
type MemoryCollector struct {
	Roots map[string]types.Snapshot
	Err   error
}

// ListChildren implements types.Collector.
func (m *MemoryCollector) ListChildren(root string) (types.Snapshot, error) {
	if snap, ok := m.Roots[root]; ok {
		// Hand out a copy so callers can't mutate the fixture.
		out := make(types.Snapshot, len(snap))
		for k, v := range snap {
			out[k] = v
		}
		return out, nil
	}
	if m.Err != nil {
		return types.Snapshot{}, m.Err
	}
	return types.Snapshot{}, nil
}

// RecordingNotifier captures every message it is asked to send and
// optionally fails with Err.
type RecordingNotifier struct {
	mu       sync.Mutex
	Messages []types.Message
	Err      error
}

// Send implements types.Notifier.
func (r *RecordingNotifier) Send(msg types.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Messages = append(r.Messages, msg)
	return nil
}

// Sent returns a copy of the captured messages.
func (r *RecordingNotifier) Sent() []types.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Message(nil), r.Messages...)
}
