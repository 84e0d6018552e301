package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenantops/dugrow/pkg/report"
	"github.com/tenantops/dugrow/pkg/snapshot"
	"github.com/tenantops/dugrow/pkg/types"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero", bytes: 0, want: "0 B"},
		{name: "plain bytes", bytes: 512, want: "512 B"},
		{name: "just below a kilobyte", bytes: 1023, want: "1023 B"},
		{name: "exactly one kilobyte", bytes: 1024, want: "1.00 KB"},
		{name: "one and a half kilobytes", bytes: 1536, want: "1.50 KB"},
		{name: "megabytes", bytes: 10 * 1024 * 1024, want: "10.00 MB"},
		{name: "five gigabytes", bytes: 5368709120, want: "5.00 GB"},
		{name: "terabytes", bytes: 1099511627776, want: "1.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.HumanSize(tt.bytes))
		})
	}
}

func testTenant() types.Tenant {
	return types.Tenant{ID: "acme", Root: "/srv/tenants/acme", Notify: "ops@acme.example"}
}

func testKeys() (snapshot.MonthKey, snapshot.MonthKey) {
	cur := snapshot.MonthKey{Year: 2026, Month: time.August}
	return cur.Prev(), cur
}

func TestRenderEmptyRecordsProducesNoReport(t *testing.T) {
	prev, cur := testKeys()
	assert.Nil(t, report.Render(testTenant(), prev, cur, nil))
	assert.Nil(t, report.Render(testTenant(), prev, cur, []types.GrowthRecord{}))
}

func TestRenderBody(t *testing.T) {
	prev, cur := testKeys()
	records := []types.GrowthRecord{
		{Path: "/srv/tenants/acme/uploads", PreviousBytes: 1073741824, CurrentBytes: 6442450944, AbsoluteDelta: 5368709120, PercentDelta: "500.00"},
		{Path: "/srv/tenants/acme/logs", PreviousBytes: 0, CurrentBytes: 1536, AbsoluteDelta: 1536, PercentDelta: "N/A"},
	}

	rep := report.Render(testTenant(), prev, cur, records)
	require.NotNil(t, rep)

	assert.Contains(t, rep.Subject, "acme")
	assert.Contains(t, rep.Subject, "2026-07")
	assert.Contains(t, rep.Subject, "2026-08")
	assert.Contains(t, rep.Subject, "2 path(s)")

	assert.Contains(t, rep.Body, "Tenant:  acme")
	assert.Contains(t, rep.Body, "Root:    /srv/tenants/acme")
	assert.Contains(t, rep.Body, "2026-07 -> 2026-08")

	// Sizes in human units, in the record order handed in.
	assert.Contains(t, rep.Body, "5.00 GB")
	assert.Contains(t, rep.Body, "1.50 KB")
	assert.Contains(t, rep.Body, "N/A")
	assert.Contains(t, rep.Body, "500.00")

	uploads := strings.Index(rep.Body, "/srv/tenants/acme/uploads")
	logs := strings.Index(rep.Body, "/srv/tenants/acme/logs")
	require.True(t, uploads >= 0 && logs >= 0)
	assert.Less(t, uploads, logs, "records must render in the given order")
}
