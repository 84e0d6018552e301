package collector

import (
	"path/filepath"

	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/logging"
	"github.com/tenantops/dugrow/pkg/types"
)

// Local collects child sizes by walking a local filesystem through
// types.FS. Each immediate child of the root is reported with the
// recursive byte total of everything beneath it.
type Local struct {
	fs types.FS
}

// NewLocal creates a local filesystem collector.
func NewLocal(fsys types.FS) *Local {
	return &Local{fs: fsys}
}

// ListChildren implements types.Collector. A root that does not exist
// or cannot be read yields an empty snapshot and a COLLECT_FAILED
// error; the caller treats that as a per-tenant warning, not a fatal
// condition.
func (l *Local) ListChildren(root string) (types.Snapshot, error) {
	logger := logging.GetLogger("collector.local")

	entries, err := l.fs.ReadDir(root)
	if err != nil {
		return types.Snapshot{}, errors.Wrapf(err, errors.ErrCollectFailed, "cannot list root %s", root)
	}

	snap := make(types.Snapshot, len(entries))
	for _, entry := range entries {
		child := filepath.Join(root, entry.Name())
		if !entry.IsDir() {
			info, err := entry.Info()
			if err != nil {
				logger.Debug().Err(err).Str("path", child).Msg("skipping unreadable entry")
				continue
			}
			snap[child] = info.Size()
			continue
		}
		snap[child] = l.treeSize(child)
	}
	return snap, nil
}

// treeSize accumulates the byte total under dir. Entries that vanish
// or become unreadable mid-walk are skipped, the same way du keeps
// going past permission errors.
func (l *Local) treeSize(dir string) int64 {
	logger := logging.GetLogger("collector.local")

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		logger.Debug().Err(err).Str("path", dir).Msg("skipping unreadable directory")
		return 0
	}

	var total int64
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			total += l.treeSize(path)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			continue
		}
		total += info.Size()
	}
	return total
}
