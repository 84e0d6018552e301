package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tenantops/dugrow/pkg/config"
)

func newTenantsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tenants",
		Short: MsgTenantsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "ROOT", "NOTIFY"})
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			table.SetBorder(false)
			for _, t := range cfg.Tenants {
				notify := t.Notify
				if notify == "" {
					notify = "(console)"
				}
				table.Append([]string{t.ID, t.Root, notify})
			}
			table.Render()
			return nil
		},
	}
}
