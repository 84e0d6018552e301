package snapshot

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/types"
)

const snapshotPerm = 0644

// Store persists one snapshot file per (tenant, month-key) pair under
// a state directory. The format is plain text, one record per line,
// "path<TAB>bytes", sorted by path. This is the monitor's only state.
type Store struct {
	fs  types.FS
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(fsys types.FS, dir string) *Store {
	return &Store{fs: fsys, dir: dir}
}

// Path returns the snapshot file path for a tenant and month key.
// Files are namespaced per tenant so no two tenants ever share one.
func (s *Store) Path(tenantID string, key MonthKey) string {
	return filepath.Join(s.dir, tenantID, key.String()+".tsv")
}

// Write serializes the snapshot, overwriting any existing file for
// the same (tenant, month-key). Re-running within a month replaces
// the snapshot rather than appending to it.
func (s *Store) Write(tenantID string, key MonthKey, snap types.Snapshot) error {
	path := s.Path(tenantID, key)
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrSnapshotWrite, "cannot create snapshot directory for tenant %s", tenantID)
	}

	var b strings.Builder
	for _, p := range snap.Paths() {
		fmt.Fprintf(&b, "%s\t%d\n", p, snap[p])
	}

	if err := s.fs.WriteFile(path, []byte(b.String()), snapshotPerm); err != nil {
		return errors.Wrapf(err, errors.ErrSnapshotWrite, "cannot write snapshot %s", path)
	}
	return nil
}

// Read loads the snapshot for a tenant and month key. A missing file
// is not an error: it reports found=false with an empty snapshot,
// which is the designed first-run / new-tenant case. Malformed
// content fails closed with a SNAPSHOT_PARSE error.
func (s *Store) Read(tenantID string, key MonthKey) (types.Snapshot, bool, error) {
	path := s.Path(tenantID, key)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return types.Snapshot{}, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrSnapshotRead, "cannot read snapshot %s", path)
	}

	snap := types.Snapshot{}
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		sep := strings.LastIndexByte(line, '\t')
		if sep <= 0 {
			return nil, false, errors.Newf(errors.ErrSnapshotParse,
				"malformed record at %s:%d: missing tab separator", path, i+1)
		}
		size, err := strconv.ParseInt(line[sep+1:], 10, 64)
		if err != nil || size < 0 {
			return nil, false, errors.Newf(errors.ErrSnapshotParse,
				"malformed size %q at %s:%d", line[sep+1:], path, i+1)
		}
		snap[line[:sep]] = size
	}
	return snap, true, nil
}
