package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	cfgpkg "streamseg/internal/config"
	"streamseg/internal/diag"
)

// appState carries the run's resolved configuration and diagnostics
// between the root command's PersistentPreRunE and each subcommand.
type appState struct {
	cfg    cfgpkg.Config
	logger *diag.Logger
	term   *diag.Terminal
	start  time.Time
}

func newRootCmd(state *appState) *cobra.Command {
	var (
		flagConfig string
		flagLevel  string
		flagStatus bool
	)

	root := &cobra.Command{
		Use:           "streamseg",
		Short:         "Incremental Markdown/XML segmentation demonstrator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			state.start = time.Now()

			cfg := cfgpkg.Defaults()
			if flagConfig != "" {
				loaded, err := cfgpkg.LoadFile(flagConfig, nil)
				if err != nil {
					return err
				}
				cfg = cfgpkg.Merge(cfg, loaded)
			}
			cfg = cfgpkg.Merge(cfg, cfgpkg.EnvOverlay(os.Environ()))

			var overCLI cfgpkg.Config
			if strings.TrimSpace(flagLevel) != "" {
				overCLI.Logging.Level = flagLevel
			}
			cfg = cfgpkg.Merge(cfg, overCLI)

			if err := cfgpkg.Validate(cfg); err != nil {
				return err
			}
			state.cfg = cfg

			corrID := diag.NewCorrID()
			state.logger = diag.NewLogger(corrID, cfg.Logging.Level)
			state.term = diag.NewTerminal(os.Stderr, flagStatus)
			diag.SetTerminal(state.term)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			diag.SetTerminal(nil)
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (JSON or YAML)")
	root.PersistentFlags().StringVar(&flagLevel, "log-level", "", "log level override: debug|info|warn|error")
	root.PersistentFlags().BoolVar(&flagStatus, "status", true, "terminal status line (stderr); dynamic on a TTY, line-per-milestone otherwise")

	root.AddCommand(newPushCmd(state))
	root.AddCommand(newSplitXMLCmd(state))
	root.AddCommand(newInitConfigCmd())

	return root
}

func exitCodeFor(code diag.Code) int {
	switch code {
	case diag.CodeCancel:
		return 130
	case diag.CodeInvariant, diag.CodeIO:
		return 3
	default:
		return 1
	}
}
