package types

import (
	"io/fs"
	"sort"
)

// Tenant is one monitored owner: a root path and an optional
// notification address. Loaded from configuration, never persisted.
type Tenant struct {
	ID     string `koanf:"id"`
	Root   string `koanf:"root"`
	Notify string `koanf:"notify"`
}

// Snapshot maps an immediate child path of a tenant root to its
// cumulative size in bytes. Snapshots are created once per run and
// never mutated afterwards.
type Snapshot map[string]int64

// Get returns the recorded size for path, or 0 when the path is not
// part of the snapshot.
func (s Snapshot) Get(path string) int64 {
	return s[path]
}

// Paths returns the snapshot's keys in ascending lexical order.
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// GrowthRecord is one path's month-over-month size increase. Records
// are only produced for paths that grew; AbsoluteDelta is always
// positive.
type GrowthRecord struct {
	Path          string
	PreviousBytes int64
	CurrentBytes  int64
	AbsoluteDelta int64

	// PercentDelta is the growth relative to PreviousBytes formatted
	// to two decimals, or "N/A" when PreviousBytes is zero.
	PercentDelta string
}

// Message is the payload handed to a Notifier.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// FS is the filesystem interface required by the snapshot store and
// the local collector. Production code uses the OS implementation;
// tests substitute an afero-backed one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
}

// Collector lists the immediate children of a tenant root together
// with each child's recursive byte total. Implementations must treat
// the traversal as read-only.
type Collector interface {
	ListChildren(root string) (Snapshot, error)
}

// Notifier delivers one rendered report.
type Notifier interface {
	Send(msg Message) error
}
