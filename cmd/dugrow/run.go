package main

import (
	"github.com/spf13/cobra"

	"github.com/tenantops/dugrow/pkg/logging"
	"github.com/tenantops/dugrow/pkg/monitor"
	"github.com/tenantops/dugrow/pkg/snapshot"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:     "run [tenant...]",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.run")

			mon, _, err := buildMonitor(flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := monitor.RunOptions{TenantIDs: args, DryRun: flags.dryRun}
			if month != "" {
				key, err := snapshot.ParseMonthKey(month)
				if err != nil {
					return err
				}
				opts.Month = key
			}

			result, err := mon.Run(opts)
			if err != nil {
				return err
			}

			// Tenant-level failures are recorded, never fatal.
			logger.Info().
				Int("tenants", len(result.Outcomes)).
				Int("notified", result.Notified()).
				Int("failed", result.Failed()).
				Msg("Run command finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", MsgFlagMonth)
	return cmd
}
