package main

import (
	"github.com/spf13/cobra"

	"github.com/tenantops/dugrow/pkg/monitor"
	"github.com/tenantops/dugrow/pkg/snapshot"
)

func newCollectCmd(flags *globalFlags) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "collect [tenant...]",
		Short: MsgCollectShort,
		Long:  MsgCollectLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			mon, _, err := buildMonitor(flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := monitor.RunOptions{TenantIDs: args, CollectOnly: true}
			if month != "" {
				key, err := snapshot.ParseMonthKey(month)
				if err != nil {
					return err
				}
				opts.Month = key
			}

			_, err = mon.Run(opts)
			return err
		},
	}

	cmd.Flags().StringVar(&month, "month", "", MsgFlagMonth)
	return cmd
}
