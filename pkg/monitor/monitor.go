// Package monitor runs the per-tenant pipeline: collect the current
// month's snapshot, load the previous month's, diff, format, notify.
// Tenants are processed sequentially and independently; a failure in
// one never aborts its siblings, and the run as a whole only fails on
// configuration problems detected before any tenant is touched.
package monitor

import (
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tenantops/dugrow/pkg/config"
	"github.com/tenantops/dugrow/pkg/diff"
	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/logging"
	"github.com/tenantops/dugrow/pkg/notify"
	"github.com/tenantops/dugrow/pkg/report"
	"github.com/tenantops/dugrow/pkg/snapshot"
	"github.com/tenantops/dugrow/pkg/types"
)

// Suppression reasons recorded on a TenantOutcome.
const (
	SuppressDryRun    = "dry-run"
	SuppressNoAddress = "no-address"
)

// Monitor wires the collector, store and notifiers together for one
// configuration.
type Monitor struct {
	cfg       *config.Config
	store     *snapshot.Store
	collector types.Collector
	notifier  types.Notifier
	console   types.Notifier
}

// New creates a Monitor. out is the normal output channel used when
// delivery is suppressed (dry-run or no address configured).
func New(cfg *config.Config, fsys types.FS, coll types.Collector, notifier types.Notifier, out io.Writer) *Monitor {
	return &Monitor{
		cfg:       cfg,
		store:     snapshot.NewStore(fsys, cfg.StateDir),
		collector: coll,
		notifier:  notifier,
		console:   notify.NewConsole(out),
	}
}

// RunOptions controls one run.
type RunOptions struct {
	// TenantIDs restricts the run to the named tenants. Empty means
	// every configured tenant. Unknown ids fail before any tenant is
	// processed.
	TenantIDs []string

	// Month overrides the current month key, for backfills and tests.
	// Zero means the calendar month of the wall clock.
	Month snapshot.MonthKey

	// DryRun routes every would-be mail to the console instead of the
	// transport.
	DryRun bool

	// CollectOnly stops each tenant after its snapshot is persisted,
	// for cron setups that split collection from alerting.
	CollectOnly bool
}

// TenantOutcome records what happened to one tenant during a run.
// Every outcome is also written to the activity log.
type TenantOutcome struct {
	TenantID string

	// CollectWarning is set when collection failed and an empty
	// snapshot was recorded instead.
	CollectWarning string

	// Baseline is true when no previous-month snapshot existed; the
	// run wrote this month's snapshot as the baseline and skipped
	// alerting.
	Baseline bool

	// Records is the number of growth records produced.
	Records int

	Notified       bool
	Suppressed     bool
	SuppressReason string
	DeliveryErr    error

	// Err is a per-tenant store failure (read, write, parse). It is
	// contained: siblings still run.
	Err error
}

// RunResult aggregates a whole run.
type RunResult struct {
	Month    snapshot.MonthKey
	Previous snapshot.MonthKey
	DryRun   bool
	Outcomes []TenantOutcome
}

// Failed counts tenants with a contained error.
func (r *RunResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil || o.DeliveryErr != nil {
			n++
		}
	}
	return n
}

// Notified counts tenants whose report was delivered.
func (r *RunResult) Notified() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Notified {
			n++
		}
	}
	return n
}

// Run executes the pipeline for the selected tenants. The returned
// error is only non-nil for pre-run failures (unknown tenant ids);
// per-tenant trouble lives in the outcomes.
func (m *Monitor) Run(opts RunOptions) (*RunResult, error) {
	logger := logging.GetLogger("monitor")

	tenants, err := m.selectTenants(opts.TenantIDs)
	if err != nil {
		return nil, err
	}

	key := opts.Month
	if key.IsZero() {
		key = snapshot.KeyFor(time.Now())
	}
	prev := key.Prev()

	result := &RunResult{Month: key, Previous: prev, DryRun: opts.DryRun}
	logger.Info().
		Str("month", key.String()).
		Str("previous", prev.String()).
		Int("tenants", len(tenants)).
		Bool("dryRun", opts.DryRun).
		Msg("run started")

	for _, tenant := range tenants {
		outcome := m.processTenant(tenant, key, prev, opts)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	logger.Info().
		Str("month", key.String()).
		Int("tenants", len(tenants)).
		Int("notified", result.Notified()).
		Int("failed", result.Failed()).
		Msg("run finished")
	return result, nil
}

// selectTenants resolves the tenant filter against the configuration,
// in ascending id order for reproducible runs.
func (m *Monitor) selectTenants(ids []string) ([]types.Tenant, error) {
	var tenants []types.Tenant
	if len(ids) == 0 {
		tenants = append(tenants, m.cfg.Tenants...)
	} else {
		for _, id := range ids {
			t, ok := m.cfg.Tenant(id)
			if !ok {
				return nil, errors.Newf(errors.ErrInvalidInput, "unknown tenant %q", id)
			}
			tenants = append(tenants, t)
		}
	}
	sort.Slice(tenants, func(i, j int) bool { return tenants[i].ID < tenants[j].ID })
	return tenants, nil
}

// processTenant walks one tenant through the state machine. All
// failures are contained in the returned outcome.
func (m *Monitor) processTenant(tenant types.Tenant, key, prev snapshot.MonthKey, opts RunOptions) TenantOutcome {
	logger := logging.GetLogger("monitor").With().Str("tenant", tenant.ID).Logger()
	outcome := TenantOutcome{TenantID: tenant.ID}

	// COLLECT. A failed collection degrades to an empty snapshot so a
	// baseline still gets recorded for next month.
	current, err := m.collector.ListChildren(tenant.Root)
	if err != nil {
		outcome.CollectWarning = err.Error()
		current = types.Snapshot{}
		logger.Warn().Err(err).Str("root", tenant.Root).Msg("collection failed, recording empty snapshot")
	} else {
		var total int64
		for _, size := range current {
			total += size
		}
		logger.Info().
			Str("root", tenant.Root).
			Int("children", len(current)).
			Str("total", humanize.Bytes(uint64(total))).
			Msg("collected")
	}

	if err := m.store.Write(tenant.ID, key, current); err != nil {
		outcome.Err = err
		logger.Error().Err(err).Msg("snapshot write failed")
		return outcome
	}

	if opts.CollectOnly {
		logger.Info().Str("month", key.String()).Msg("snapshot recorded")
		return outcome
	}

	// LOAD_PREVIOUS. Absence means first run: keep the baseline,
	// alert nothing.
	previous, found, err := m.store.Read(tenant.ID, prev)
	if err != nil {
		outcome.Err = err
		logger.Error().Err(err).Str("month", prev.String()).Msg("previous snapshot unreadable")
		return outcome
	}
	if !found {
		outcome.Baseline = true
		logger.Info().Str("month", prev.String()).Msg("no previous snapshot, baseline written")
		return outcome
	}

	// DIFF.
	records := diff.Growth(previous, current)
	outcome.Records = len(records)
	if len(records) == 0 {
		logger.Info().Msg("no growth detected")
		return outcome
	}

	// FORMAT + NOTIFY.
	rep := report.Render(tenant, prev, key, records)
	msg := types.Message{
		From:    m.cfg.SMTP.From,
		To:      tenant.Notify,
		Subject: rep.Subject,
		Body:    rep.Body,
	}

	switch {
	case opts.DryRun:
		outcome.Suppressed = true
		outcome.SuppressReason = SuppressDryRun
		if err := m.console.Send(msg); err != nil {
			outcome.DeliveryErr = err
		}
		logger.Info().Int("records", len(records)).Msg("dry run, delivery suppressed")
	case tenant.Notify == "":
		outcome.Suppressed = true
		outcome.SuppressReason = SuppressNoAddress
		if err := m.console.Send(msg); err != nil {
			outcome.DeliveryErr = err
		}
		logger.Warn().Int("records", len(records)).Msg("no notify address, report written to output")
	default:
		if err := m.notifier.Send(msg); err != nil {
			outcome.DeliveryErr = err
			logger.Error().Err(err).Str("to", tenant.Notify).Msg("delivery failed")
		} else {
			outcome.Notified = true
			logger.Info().
				Str("to", tenant.Notify).
				Str("subject", rep.Subject).
				Int("bodyBytes", len(rep.Body)).
				Int("records", len(records)).
				Msg("report delivered")
		}
	}
	return outcome
}
