// Package diff computes month-over-month growth between two size
// snapshots. It is a one-directional growth alert: paths that shrank,
// stayed equal, or disappeared produce no records.
package diff

import (
	"fmt"
	"sort"

	"github.com/tenantops/dugrow/pkg/types"
)

// PercentNA is the sentinel percent delta for brand-new paths, where
// a percentage would be undefined rather than infinite.
const PercentNA = "N/A"

// Growth compares the previous and current snapshots and returns one
// GrowthRecord per path whose size increased, ordered by descending
// absolute delta with ties broken by ascending path.
func Growth(previous, current types.Snapshot) []types.GrowthRecord {
	paths := make(map[string]struct{}, len(previous)+len(current))
	for p := range previous {
		paths[p] = struct{}{}
	}
	for p := range current {
		paths[p] = struct{}{}
	}

	var records []types.GrowthRecord
	for p := range paths {
		prev := previous.Get(p)
		cur := current.Get(p)
		if cur <= prev {
			continue
		}
		records = append(records, types.GrowthRecord{
			Path:          p,
			PreviousBytes: prev,
			CurrentBytes:  cur,
			AbsoluteDelta: cur - prev,
			PercentDelta:  percentDelta(cur-prev, prev),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].AbsoluteDelta != records[j].AbsoluteDelta {
			return records[i].AbsoluteDelta > records[j].AbsoluteDelta
		}
		return records[i].Path < records[j].Path
	})
	return records
}

func percentDelta(delta, previous int64) string {
	if previous == 0 {
		return PercentNA
	}
	return fmt.Sprintf("%.2f", float64(delta)*100/float64(previous))
}
