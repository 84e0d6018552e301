package snapshot_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/filesystem"
	"github.com/tenantops/dugrow/pkg/snapshot"
	"github.com/tenantops/dugrow/pkg/types"
)

var august = snapshot.MonthKey{Year: 2026, Month: time.August}

func newTestStore() (*snapshot.Store, afero.Fs) {
	memfs := afero.NewMemMapFs()
	return snapshot.NewStore(filesystem.NewAferoFS(memfs), "/var/lib/dugrow"), memfs
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	snap := types.Snapshot{
		"/srv/acme/logs":    1536,
		"/srv/acme/uploads": 5368709120,
		"/srv/acme/tmp":     0,
	}
	require.NoError(t, store.Write("acme", august, snap))

	got, found, err := store.Read("acme", august)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, snap, got)
}

func TestStoreFileFormat(t *testing.T) {
	store, memfs := newTestStore()

	require.NoError(t, store.Write("acme", august, types.Snapshot{
		"/srv/b": 2,
		"/srv/a": 1,
	}))

	data, err := afero.ReadFile(memfs, "/var/lib/dugrow/acme/2026-08.tsv")
	require.NoError(t, err)
	assert.Equal(t, "/srv/a\t1\n/srv/b\t2\n", string(data))
}

func TestStoreWriteOverwrites(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.Write("acme", august, types.Snapshot{"/srv/a": 1, "/srv/b": 2}))
	require.NoError(t, store.Write("acme", august, types.Snapshot{"/srv/a": 9}))

	got, found, err := store.Read("acme", august)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, types.Snapshot{"/srv/a": 9}, got)
}

func TestStoreReadMissing(t *testing.T) {
	store, _ := newTestStore()

	got, found, err := store.Read("acme", august)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestStoreReadEmptyFile(t *testing.T) {
	store, _ := newTestStore()

	// An empty file means "no data collected" and is valid.
	require.NoError(t, store.Write("acme", august, types.Snapshot{}))

	got, found, err := store.Read("acme", august)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestStoreReadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing separator", content: "/srv/a 100\n"},
		{name: "non-numeric size", content: "/srv/a\tlots\n"},
		{name: "negative size", content: "/srv/a\t-5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, memfs := newTestStore()
			require.NoError(t, memfs.MkdirAll("/var/lib/dugrow/acme", 0755))
			require.NoError(t, afero.WriteFile(memfs, "/var/lib/dugrow/acme/2026-08.tsv", []byte(tt.content), 0644))

			_, _, err := store.Read("acme", august)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSnapshotParse))
		})
	}
}

func TestStorePathsAreNamespacedPerTenant(t *testing.T) {
	store, _ := newTestStore()
	assert.NotEqual(t, store.Path("acme", august), store.Path("globex", august))
	assert.NotEqual(t, store.Path("acme", august), store.Path("acme", august.Prev()))
}
