package collector_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenantops/dugrow/pkg/collector"
	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/filesystem"
	"github.com/tenantops/dugrow/pkg/types"
)

func writeBytes(t *testing.T, fsys afero.Fs, path string, n int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, make([]byte, n), 0644))
}

func TestLocalListChildren(t *testing.T) {
	memfs := afero.NewMemMapFs()
	writeBytes(t, memfs, "/srv/acme/logs/app.log", 100)
	writeBytes(t, memfs, "/srv/acme/logs/archive/old.log", 50)
	writeBytes(t, memfs, "/srv/acme/dump.sql", 20)
	require.NoError(t, memfs.MkdirAll("/srv/acme/empty", 0755))

	local := collector.NewLocal(filesystem.NewAferoFS(memfs))
	snap, err := local.ListChildren("/srv/acme")
	require.NoError(t, err)

	// One entry per immediate child; directory sizes are recursive
	// totals, file children count their own size.
	assert.Equal(t, types.Snapshot{
		"/srv/acme/logs":     150,
		"/srv/acme/dump.sql": 20,
		"/srv/acme/empty":    0,
	}, snap)
}

func TestLocalListChildrenMissingRoot(t *testing.T) {
	memfs := afero.NewMemMapFs()

	local := collector.NewLocal(filesystem.NewAferoFS(memfs))
	snap, err := local.ListChildren("/does/not/exist")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCollectFailed))
	assert.Empty(t, snap, "a failed collection still yields an empty snapshot for the baseline")
}

func TestLocalListChildrenEmptyRoot(t *testing.T) {
	memfs := afero.NewMemMapFs()
	require.NoError(t, memfs.MkdirAll("/srv/empty", 0755))

	local := collector.NewLocal(filesystem.NewAferoFS(memfs))
	snap, err := local.ListChildren("/srv/empty")
	require.NoError(t, err)
	assert.Empty(t, snap)
}
