package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tenantops/dugrow/pkg/config"
	"github.com/tenantops/dugrow/pkg/diff"
	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/filesystem"
	"github.com/tenantops/dugrow/pkg/report"
	"github.com/tenantops/dugrow/pkg/snapshot"
)

func newReportCmd(flags *globalFlags) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report <tenant>",
		Short: MsgReportShort,
		Long:  MsgReportLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			tenant, ok := cfg.Tenant(args[0])
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown tenant %q", args[0])
			}

			key := snapshot.KeyFor(time.Now())
			if month != "" {
				key, err = snapshot.ParseMonthKey(month)
				if err != nil {
					return err
				}
			}
			prev := key.Prev()

			store := snapshot.NewStore(filesystem.NewOS(), cfg.StateDir)
			current, found, err := store.Read(tenant.ID, key)
			if err != nil {
				return err
			}
			if !found {
				return errors.Newf(errors.ErrSnapshotRead, "no snapshot for tenant %q in %s", tenant.ID, key)
			}
			previous, found, err := store.Read(tenant.ID, prev)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No snapshot for %s yet; %s is the baseline.\n", prev, key)
				return nil
			}

			records := diff.Growth(previous, current)
			rep := report.Render(tenant, prev, key, records)
			if rep == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No growth for tenant %s between %s and %s.\n", tenant.ID, prev, key)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rep.Body)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", MsgFlagMonth)
	return cmd
}
