package main

// Message constants
const (
	MsgRootShort = "Monthly tenant directory growth monitor"
	MsgRootLong  = `dugrow records a monthly size snapshot of each tenant's directory tree
and mails the tenant a report of which paths grew since last month.

Snapshots are flat per-tenant, per-month files; diffing is one-directional
(growth only) and a missing previous month is treated as a fresh baseline,
never as an alert.`

	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagDryRun  = "Print would-be notifications instead of sending them"
	MsgFlagConfig  = "Path to the config file (default $DUGROW_CONFIG, then XDG config home)"
	MsgFlagMonth   = "Month key to run as, formatted YYYY-MM (default: current month)"

	MsgRunShort = "Collect, diff and notify for the configured tenants"
	MsgRunLong  = `The 'run' command executes the full pipeline for every configured tenant
(or only the tenants named as arguments): collect the current month's
snapshot, diff it against the previous month's, and mail the growth report
to the tenant's notify address.

Per-tenant failures (unreadable root, undeliverable mail) are logged and
contained; the run always continues to the next tenant and exits zero.`
	MsgRunExample = `  # Process every tenant
  dugrow run

  # Only two tenants, previewing the mail instead of sending it
  dugrow run --dry-run acme globex

  # Backfill a specific month
  dugrow run --month 2026-07`

	MsgCollectShort = "Record this month's snapshots without alerting"
	MsgCollectLong  = `The 'collect' command runs only the snapshot half of the pipeline: it
records the current month's snapshot for each tenant and stops. Useful when
collection and alerting run on different cron schedules.`

	MsgReportShort = "Print a tenant's growth report without notifying"
	MsgReportLong  = `The 'report' command diffs a tenant's stored snapshots (previous month
against the given month) and prints the rendered report to stdout. Nothing
is collected and nothing is mailed.`

	MsgTenantsShort = "List the configured tenants"

	MsgVersionShort = "Print version information"
)
