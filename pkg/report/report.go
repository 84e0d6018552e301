// Package report renders growth records into the plain-text report
// that gets mailed to a tenant's notification address.
package report

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/tenantops/dugrow/pkg/snapshot"
	"github.com/tenantops/dugrow/pkg/types"
)

// Report is a rendered tenant report ready for delivery.
type Report struct {
	Subject string
	Body    string
}

// Render builds the report for one tenant run. It returns nil when
// there are no records: no growth means no report and no mail.
func Render(tenant types.Tenant, previous, current snapshot.MonthKey, records []types.GrowthRecord) *Report {
	if len(records) == 0 {
		return nil
	}

	var body bytes.Buffer
	fmt.Fprintf(&body, "Tenant:  %s\n", tenant.ID)
	fmt.Fprintf(&body, "Root:    %s\n", tenant.Root)
	fmt.Fprintf(&body, "Period:  %s -> %s\n\n", previous, current)

	table := tablewriter.NewWriter(&body)
	table.SetHeader([]string{"GROWTH", "PREVIOUS", "CURRENT", "%", "PATH"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range records {
		table.Append([]string{
			HumanSize(r.AbsoluteDelta),
			HumanSize(r.PreviousBytes),
			HumanSize(r.CurrentBytes),
			r.PercentDelta,
			r.Path,
		})
	}
	table.Render()

	fmt.Fprintf(&body, "\n%d path(s) grew since %s.\n", len(records), previous)

	return &Report{
		Subject: fmt.Sprintf("[dugrow] %s: %d path(s) grew (%s -> %s)", tenant.ID, len(records), previous, current),
		Body:    body.String(),
	}
}

const (
	kb = int64(1) << 10
	mb = kb << 10
	gb = mb << 10
	tb = gb << 10
)

// HumanSize renders a byte count in the largest unit for which the
// value is at least 1: two decimals for TB through KB, a plain
// integer for B. 1536 -> "1.50 KB", 512 -> "512 B".
func HumanSize(bytes int64) string {
	switch {
	case bytes >= tb:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(tb))
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
