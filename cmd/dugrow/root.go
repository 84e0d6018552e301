package main

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tenantops/dugrow/internal/version"
	"github.com/tenantops/dugrow/pkg/collector"
	"github.com/tenantops/dugrow/pkg/config"
	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/filesystem"
	"github.com/tenantops/dugrow/pkg/logging"
	"github.com/tenantops/dugrow/pkg/monitor"
	"github.com/tenantops/dugrow/pkg/notify"
	"github.com/tenantops/dugrow/pkg/types"
)

// globalFlags carries the persistent flag values into subcommands.
type globalFlags struct {
	verbosity  int
	dryRun     bool
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "dugrow",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but flag the usage error.
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newRunCmd(flags))
	rootCmd.AddCommand(newCollectCmd(flags))
	rootCmd.AddCommand(newReportCmd(flags))
	rootCmd.AddCommand(newTenantsCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// buildMonitor loads the configuration and wires the production
// dependencies. Fatal configuration problems (unreadable config,
// missing collection command) surface here, before any tenant runs.
func buildMonitor(flags *globalFlags, out io.Writer) (*monitor.Monitor, *config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	coll, err := newCollector(cfg)
	if err != nil {
		return nil, nil, err
	}

	notifier := notify.NewSMTP(notify.SMTPOptions{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		StartTLS: cfg.SMTP.StartTLS,
	})

	mon := monitor.New(cfg, filesystem.NewOS(), coll, notifier, out)
	return mon, cfg, nil
}

func newCollector(cfg *config.Config) (types.Collector, error) {
	switch cfg.Collector.Backend {
	case config.BackendCommand:
		return collector.NewCommand(cfg.Collector.Command)
	default:
		return collector.NewLocal(filesystem.NewOS()), nil
	}
}
